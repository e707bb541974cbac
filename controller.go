package apiversion

import (
	"github.com/aws/aws-lambda-go/lambda"
)

// LambdaController adapts a lambda style function into a Controller. The
// function itself is kept so that mocks can reproduce its signature.
type LambdaController struct {
	lambda.Handler
	source     interface{}
	errors     []error
	identifier string
}

// Source returns the wrapped function.
func (c *LambdaController) Source() interface{} {
	return c.source
}

// Errors returns the errors the controller documents. Only controllers built
// with NewControllerWithErrors document any.
func (c *LambdaController) Errors() []error {
	return c.errors
}

// Identifier is the controller name the instance was fetched under. It is
// empty for controllers that have not passed through a MockingFetcher.
func (c *LambdaController) Identifier() string {
	return c.identifier
}

// Version reports the API version encoded in Identifier.
func (c *LambdaController) Version() (int, bool) {
	ns, ok := ParseVersionNamespace(c.identifier, NamespaceSeparator)
	if !ok {
		return 0, false
	}
	return ns.Version, true
}

// NewControllerWithErrors builds a controller that documents the error
// types fn may return. fn must be accepted by lambda.NewHandler.
func NewControllerWithErrors(fn interface{}, errors ...error) Controller {
	return &LambdaController{
		Handler: lambda.NewHandler(fn),
		source:  fn,
		errors:  errors,
	}
}

// NewController builds a controller from any function accepted by
// lambda.NewHandler.
func NewController(fn interface{}) Controller {
	return NewControllerWithErrors(fn)
}
