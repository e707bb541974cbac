package apiversion

import (
	"context"
	"errors"
	"testing"

	"github.com/asecurityteam/logevent/v2"
	"github.com/golang/mock/gomock"
	"github.com/rs/xstats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fieldLogger struct {
	nopLogger
	fields map[string]interface{}
}

func (l *fieldLogger) SetField(name string, value interface{}) {
	l.fields[name] = value
}

func (l *fieldLogger) Copy() Logger {
	return l
}

func TestLoggingFetcherInjectsLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger := &fieldLogger{fields: map[string]interface{}{}}
	fn := NewMockController(ctrl)
	fetcher := NewMockFetcher(ctrl)
	f := &loggingFetcher{
		LogFn:   func(context.Context) Logger { return logger },
		Fetcher: fetcher,
	}

	fetcher.EXPECT().Fetch(gomock.Any(), v2Controller).Return(fn, nil)
	fn.EXPECT().Invoke(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, b []byte) ([]byte, error) {
		assert.Same(t, logger, logevent.FromContext(ctx))
		return b, nil
	})

	c, err := f.Fetch(context.Background(), v2Controller)
	require.NoError(t, err)
	_, err = c.Invoke(context.Background(), []byte("{}"))
	require.NoError(t, err)
	assert.Equal(t, v2Controller, logger.fields["controller"])
}

type copyingLogger struct {
	nopLogger
	fields map[string]interface{}
}

func (l *copyingLogger) SetField(name string, value interface{}) {
	l.fields[name] = value
}

func (l *copyingLogger) Copy() Logger {
	fields := make(map[string]interface{}, len(l.fields))
	for k, v := range l.fields {
		fields[k] = v
	}
	return &copyingLogger{fields: fields}
}

func TestLoggingFetcherLeavesRequestLoggerUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	requestLogger := &copyingLogger{fields: map[string]interface{}{}}
	fn := NewMockController(ctrl)
	fetcher := NewMockFetcher(ctrl)
	f := &loggingFetcher{
		LogFn:   func(context.Context) Logger { return requestLogger },
		Fetcher: fetcher,
	}

	fetcher.EXPECT().Fetch(gomock.Any(), v2Controller).Return(fn, nil)
	fn.EXPECT().Invoke(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, b []byte) ([]byte, error) {
		injected := logevent.FromContext(ctx).(*copyingLogger)
		assert.Equal(t, v2Controller, injected.fields["controller"])
		return b, nil
	})

	c, err := f.Fetch(context.Background(), v2Controller)
	require.NoError(t, err)
	_, err = c.Invoke(context.Background(), []byte("{}"))
	require.NoError(t, err)
	assert.NotContains(t, requestLogger.fields, "controller")
}

func TestStatFetcherInjectsStat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stat := &countingStat{counts: map[string]float64{}}
	fn := NewMockController(ctrl)
	fetcher := NewMockFetcher(ctrl)
	f := &statFetcher{
		StatFn:  func(context.Context) Stat { return stat },
		Fetcher: fetcher,
	}

	fetcher.EXPECT().Fetch(gomock.Any(), v2Controller).Return(fn, nil)
	fn.EXPECT().Invoke(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, b []byte) ([]byte, error) {
		xstats.FromContext(ctx).Count("widgets", 1)
		return b, nil
	})

	c, err := f.Fetch(context.Background(), v2Controller)
	require.NoError(t, err)
	_, err = c.Invoke(context.Background(), []byte("{}"))
	require.NoError(t, err)
	assert.Equal(t, float64(1), stat.counts["widgets"])
}

func TestDecoratorsPassFetchErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := NewMockFetcher(ctrl)
	fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(nil, errors.New("fail")).Times(2)

	_, err := (&loggingFetcher{LogFn: testLogFn, Fetcher: fetcher}).Fetch(context.Background(), v2Controller)
	require.Error(t, err)
	_, err = (&statFetcher{StatFn: testStatFn, Fetcher: fetcher}).Fetch(context.Background(), v2Controller)
	require.Error(t, err)
}
