package tracker_test

import (
	"testing"

	"github.com/fitnesslabs/fittrack/pkg/trackersdk"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	baseURL, cleanup := setupTrackerContainer(t)
	defer cleanup()

	sdk := trackersdk.NewSDKClient(baseURL)

	require.NoError(t, sdk.Livez(t.Context()))
	require.NoError(t, sdk.Readyz(t.Context()))
}
