package util

import (
	"errors"
	"testing"

	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cn "github.com/trainboard/lib-secrets-go/constant"
	"github.com/trainboard/lib-secrets-go/model"
	"github.com/trainboard/lib-secrets-go/pkg"
	"go.uber.org/mock/gomock"
)

func TestValidateEnvVariables(t *testing.T) {
	complete := model.Secrets{
		SSID:     "MyNetwork",
		Password: "",
		Server:   "speech.googleapis.com",
		RootCA:   "",
		APIKey:   "key-123",
	}

	tests := []struct {
		name      string
		mutate    func(s *model.Secrets)
		wantErr   error
		wantInLog []string
	}{
		{
			name:   "complete secrets, open network and no root CA",
			mutate: func(s *model.Secrets) {},
		},
		{
			name:      "missing SSID",
			mutate:    func(s *model.Secrets) { s.SSID = "" },
			wantErr:   cn.ErrMissingSSID,
			wantInLog: []string{"Missing Wi-Fi SSID"},
		},
		{
			name:      "blank server",
			mutate:    func(s *model.Secrets) { s.Server = "   " },
			wantErr:   cn.ErrMissingServer,
			wantInLog: []string{"Missing server"},
		},
		{
			name:      "missing API key",
			mutate:    func(s *model.Secrets) { s.APIKey = "" },
			wantErr:   cn.ErrMissingAPIKey,
			wantInLog: []string{"Missing API key"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLogger := log.NewMockLogger(ctrl)

			if tt.wantErr != nil {
				mockLogger.EXPECT().
					Errorf(gomock.Any(), gomock.Any()).
					Do(func(format string, args ...any) {
						for _, part := range tt.wantInLog {
							assert.Contains(t, format, part)
						}

						assert.Contains(t, args, tt.wantErr.Error())
					}).
					Times(1)
			}

			s := complete
			tt.mutate(&s)

			err := ValidateEnvVariables(&s, mockLogger)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))

			var vErr pkg.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantErr.Error(), vErr.Code)
		})
	}
}

func TestValidateEnvVariables_Nil(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	err := ValidateEnvVariables(nil, log.NewMockLogger(ctrl))
	require.Error(t, err)
}
