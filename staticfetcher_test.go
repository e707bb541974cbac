package apiversion

import (
	"context"
	"reflect"
	"testing"

	"github.com/golang/mock/gomock"
)

func TestStatic_Fetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	found := NewMockController(ctrl)

	type fields struct {
		Controllers map[string]Controller
	}
	type args struct {
		ctx        context.Context
		identifier string
	}
	tests := []struct {
		name        string
		fields      fields
		args        args
		want        Controller
		wantErr     bool
		wantErrType reflect.Type
	}{
		{
			name:        "missing controller",
			fields:      fields{Controllers: make(map[string]Controller)},
			args:        args{ctx: context.Background(), identifier: v2Controller},
			want:        nil,
			wantErr:     true,
			wantErrType: reflect.TypeOf(NotFoundError{}),
		},
		{
			name: "other version registered",
			fields: fields{
				Controllers: map[string]Controller{
					v1Controller: found,
				},
			},
			args:        args{ctx: context.Background(), identifier: v2Controller},
			want:        nil,
			wantErr:     true,
			wantErrType: reflect.TypeOf(NotFoundError{}),
		},
		{
			name: "found controller",
			fields: fields{
				Controllers: map[string]Controller{
					v2Controller: found,
				},
			},
			args:    args{ctx: context.Background(), identifier: v2Controller},
			want:    found,
			wantErr: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &StaticFetcher{
				Controllers: tt.fields.Controllers,
			}
			got, err := f.Fetch(tt.args.ctx, tt.args.identifier)
			if (err != nil) != tt.wantErr {
				t.Errorf("StaticFetcher.Fetch() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if (err != nil) && tt.wantErr && tt.wantErrType != nil {
				errType := reflect.TypeOf(err)
				if errType != tt.wantErrType {
					t.Errorf("StaticFetcher.Fetch() error = %v, wantErrType %v", errType, tt.wantErrType)
				}
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("StaticFetcher.Fetch() = %v, want %v", got, tt.want)
			}
		})
	}
}
