package main

// This example serves a single widgets route in two versions. The route is
// declared once and the version segment is chained onto it, so both of the
// following work:
//
//		curl localhost:8080/v1/widgets/42
//		curl localhost:8080/v2/widgets/42
//
// Requests without a version segment, such as /widgets/42, use version 1.

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/asecurityteam/apiversion"
	"github.com/asecurityteam/settings/v2"
)

type widgetV1 struct {
	ID string `json:"id"`
}

type widgetV2 struct {
	ID    string `json:"id"`
	Links struct {
		Self string `json:"self"`
	} `json:"_links"`
}

func widgetID(ctx context.Context) string {
	id, _ := apiversion.RouteMatchFromContext(ctx).Params["widget_id"].(string)
	return id
}

func getWidgetV1(ctx context.Context) (widgetV1, error) {
	return widgetV1{ID: widgetID(ctx)}, nil
}

func getWidgetV2(ctx context.Context) (widgetV2, error) {
	w := widgetV2{ID: widgetID(ctx)}
	w.Links.Self = "/v2/widgets/" + w.ID
	return w, nil
}

type status struct {
	Component string `json:"component,omitempty"`
	OK        bool   `json:"ok"`
}

func getStatus(ctx context.Context) (status, error) {
	c, _ := apiversion.RouteMatchFromContext(ctx).Params["component"].(string)
	return status{Component: c, OK: true}, nil
}

var routes = apiversion.Config{
	apiversion.VersioningKey: map[string]interface{}{
		apiversion.URIKey: []interface{}{"widgets"},
	},
	apiversion.RouterKey: map[string]interface{}{
		apiversion.RoutesKey: map[string]interface{}{
			"widgets": map[string]interface{}{
				"type": "segment",
				"options": map[string]interface{}{
					"route": "/widgets[/:widget_id]",
					"defaults": map[string]interface{}{
						apiversion.ControllerParam: `Widgets\V1\Rest\Widget\Controller`,
					},
				},
			},
		},
	},
}

func main() {
	fetcher := &apiversion.StaticFetcher{
		Controllers: map[string]apiversion.Controller{
			`Widgets\V1\Rest\Widget\Controller`: apiversion.NewController(getWidgetV1),
			`Widgets\V2\Rest\Widget\Controller`: apiversion.NewController(getWidgetV2),
			`Status\V1\Rpc\Status\Controller`:   apiversion.NewController(getStatus),
		},
	}

	// Handle the -h flag and print settings.
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.Usage = func() {}
	err := fs.Parse(os.Args[1:])
	if err == flag.ErrHelp {
		fmt.Println(apiversion.Help())
		return
	}

	source, err := settings.NewEnvSource(os.Environ())
	if err != nil {
		panic(err.Error())
	}
	if err := apiversion.Start(context.Background(), source, fetcher, routes); err != nil {
		panic(err.Error())
	}
}
