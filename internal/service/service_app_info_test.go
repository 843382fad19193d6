package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-clinic-sync/internal/config"
	"github.com/MKhiriev/go-clinic-sync/internal/logger"
	"github.com/MKhiriev/go-clinic-sync/models"
)

func TestNewAppInfoService_RequiresVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Runtime: "desktop"}, "2026-10-01", "abc123", logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestGetAppVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		date    string
		commit  string
		want    models.AppBuildInfo
	}{
		{
			name:    "release build of syncd",
			version: "1.4.0",
			date:    "2026-10-01",
			commit:  "abc123",
			want:    models.AppBuildInfo{Version: "1.4.0", Date: "2026-10-01", Commit: "abc123"},
		},
		{
			name:    "prerelease from a branch build",
			version: "v1.5.0-rc.1+clinic.42",
			date:    "2026-10-12",
			commit:  "f00dcafe",
			want:    models.AppBuildInfo{Version: "v1.5.0-rc.1+clinic.42", Date: "2026-10-12", Commit: "f00dcafe"},
		},
		{
			name:    "go run without ldflags",
			version: "dev",
			want:    models.AppBuildInfo{Version: "dev", Date: "N/A", Commit: "N/A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(config.App{Version: tt.version}, tt.date, tt.commit, logger.Nop())
			require.NoError(t, err)

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			assert.Equal(t, tt.want, svc.GetAppVersion(ctx))
		})
	}
}
