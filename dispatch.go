package apiversion

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"reflect"
)

type routeMatchKey struct{}

// NewRouteMatchContext attaches the match to the context handed to the
// controller.
func NewRouteMatchContext(ctx context.Context, match *RouteMatch) context.Context {
	return context.WithValue(ctx, routeMatchKey{}, match)
}

// RouteMatchFromContext returns the match that selected the running
// controller, or nil when there is none.
func RouteMatchFromContext(ctx context.Context) *RouteMatch {
	m, _ := ctx.Value(routeMatchKey{}).(*RouteMatch)
	return m
}

// errorResponse is the JSON body returned for every failed dispatch.
type errorResponse struct {
	Message string `json:"errorMessage"`
	Type    string `json:"errorType"`
}

type dispatchFailed struct {
	Route      string `logevent:"route"`
	Controller string `logevent:"controller"`
	Reason     string `logevent:"reason"`
	Message    string `logevent:"message,default=dispatch-failed"`
}

// Dispatch serves a single compiled route. It builds the RouteMatch from the
// route defaults and the URL parameters, lets the route listeners adjust it,
// then fetches the controller named by the controller parameter and invokes
// it with the request body.
type Dispatch struct {
	Route      CompiledRoute
	Listeners  RouteListeners
	Fetcher    Fetcher
	LogFn      LogFn
	StatFn     StatFn
	URLParamFn URLParamFn
}

func (h *Dispatch) match(ctx context.Context) *RouteMatch {
	match := NewRouteMatch(h.Route.Name, h.Route.Defaults)
	for _, name := range h.Route.Params {
		if v := h.URLParamFn(ctx, name); v != "" {
			match.SetParam(name, v)
		}
	}
	return match
}

func (h *Dispatch) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	match := h.Listeners.Trigger(ctx, h.match(ctx))
	controller, _ := match.Params[ControllerParam].(string)
	if controller == "" {
		h.LogFn(ctx).Error(dispatchFailed{Route: match.Name, Reason: "no controller parameter"})
		writeError(w, http.StatusNotFound, NotFoundError{ID: match.Name})
		return
	}
	fn, errFn := h.Fetcher.Fetch(ctx, controller)
	switch errFn.(type) {
	case nil:
		break
	case NotFoundError:
		h.LogFn(ctx).Error(dispatchFailed{Route: match.Name, Controller: controller, Reason: errFn.Error()})
		writeError(w, http.StatusNotFound, errFn)
		return
	default:
		h.LogFn(ctx).Error(dispatchFailed{Route: match.Name, Controller: controller, Reason: errFn.Error()})
		writeError(w, http.StatusInternalServerError, errFn)
		return
	}
	b, errRead := io.ReadAll(r.Body)
	if errRead != nil {
		writeError(w, http.StatusBadRequest, errRead) // Matches JSON parsing errors for the body
		return
	}
	if len(b) == 0 {
		// lambda handlers decode their input as JSON
		b = []byte("null")
	}
	rb, errInvoke := fn.Invoke(NewRouteMatchContext(ctx, match), b)
	if errInvoke != nil {
		writeError(w, statusFromError(errInvoke), errInvoke)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if len(rb) > 0 {
		_, _ = w.Write(rb)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(responseFromError(err))
}

func responseFromError(err error) errorResponse {
	errType := reflect.TypeOf(err)
	errTypeName := errType.Name()
	if errType.Kind() == reflect.Ptr {
		errTypeName = errType.Elem().Name()
	}
	return errorResponse{
		Message: err.Error(),
		Type:    errTypeName,
	}
}

func statusFromError(err error) int {
	switch err.(type) {
	case nil:
		return http.StatusOK
	case *json.InvalidUTF8Error: // nolint
		return http.StatusBadRequest
	case *json.InvalidUnmarshalError:
		return http.StatusBadRequest
	case *json.UnmarshalFieldError: // nolint
		return http.StatusBadRequest
	case *json.UnmarshalTypeError:
		return http.StatusBadRequest
	case *json.SyntaxError:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
