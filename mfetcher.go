package apiversion

import (
	"context"
	"reflect"
)

// MockingFetcher replaces every fetched controller with one of the same
// signature that returns zero values. The mock remembers the identifier,
// and therefore the version, it was resolved to.
type MockingFetcher struct {
	Fetcher Fetcher
}

// Fetch resolves identifier with the wrapped Fetcher and mocks the result.
func (f *MockingFetcher) Fetch(ctx context.Context, identifier string) (Controller, error) {
	c, err := f.Fetcher.Fetch(ctx, identifier)
	if err != nil {
		return nil, err
	}
	return mockController(identifier, c), nil
}

func mockController(identifier string, c Controller) Controller {
	// lambda.NewHandler already validated the signature so a single
	// return value, or the last of two, is an error.
	t := reflect.TypeOf(c.Source())
	var returnType reflect.Type
	if t.NumOut() == 2 {
		returnType = t.Out(0)
	}
	fn := reflect.MakeFunc(t, zeroResults(returnType, t.NumOut() > 0))
	var errs []error
	if documented, ok := c.(interface{ Errors() []error }); ok {
		errs = documented.Errors()
	}
	mocked := NewControllerWithErrors(fn.Interface(), errs...).(*LambdaController)
	mocked.identifier = identifier
	return mocked
}

func zeroResults(returnType reflect.Type, returnsError bool) func([]reflect.Value) []reflect.Value {
	errType := reflect.TypeOf((*error)(nil)).Elem()
	return func(_ []reflect.Value) []reflect.Value {
		var res []reflect.Value
		if returnType != nil {
			res = append(res, reflect.Zero(returnType))
		}
		if returnsError {
			res = append(res, reflect.Zero(errType))
		}
		return res
	}
}
