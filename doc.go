// Package apiversion adds URL based API versioning to a chi routed service.
//
// Versioning is applied in two places. When the configuration is built, the
// PrototypeRouteListener registers a `/v:version` route prototype and chains
// it onto every route listed under `api-versioning.uri`. When a request is
// routed, the VersionListener rewrites the `V<n>` namespace segment of the
// matched controller identifier to the version found in the URL, so that
// `/v2/widgets` dispatches to `Widgets\V2\...` while `/v1/widgets` dispatches
// to `Widgets\V1\...` from a single route definition.
//
//	api-versioning:
//	  uri:
//	    - widgets
//	router:
//	  routes:
//	    widgets:
//	      type: segment
//	      options:
//	        route: /widgets[/:widget_id]
//	        defaults:
//	          controller: Widgets\V1\Rest\Widget\Controller
package apiversion
