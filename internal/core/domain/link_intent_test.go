package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/weld/internal/core/domain"
)

func TestNewLinkIntent(t *testing.T) {
	t.Run("base strips", func(t *testing.T) {
		intent, err := domain.NewLinkIntent(domain.BaseMode(), domain.PlatformLinux, "cc", "/b/incremental-cache")
		require.NoError(t, err)
		assert.Equal(t, domain.LinkActionBase, intent.Action)
		assert.True(t, intent.Strip)
		assert.Nil(t, intent.PatchTarget)
	})

	t.Run("fat does not strip", func(t *testing.T) {
		intent, err := domain.NewLinkIntent(domain.FatMode(), domain.PlatformLinux, "cc", "/b/incremental-cache")
		require.NoError(t, err)
		assert.Equal(t, domain.LinkActionBase, intent.Action)
		assert.False(t, intent.Strip)
	})

	t.Run("thin carries patch target", func(t *testing.T) {
		mode := domain.ThinMode([][]string{{"rustc", "--crate-name", "demo"}}, domain.PatchTarget{
			Binary:  "/b/app/demo",
			MainPtr: 0x1000,
		})
		intent, err := domain.NewLinkIntent(mode, domain.PlatformMacOS, "cc", "/b/incremental-cache")
		require.NoError(t, err)
		assert.Equal(t, domain.LinkActionThin, intent.Action)
		require.NotNil(t, intent.PatchTarget)
		assert.Equal(t, "/b/app/demo", intent.PatchTarget.Binary)
		assert.Equal(t, uint64(0x1000), intent.PatchTarget.MainPtr)
	})

	t.Run("thin without invocations is rejected", func(t *testing.T) {
		mode := domain.ThinMode(nil, domain.PatchTarget{Binary: "/b/app/demo", MainPtr: 1})
		_, err := domain.NewLinkIntent(mode, domain.PlatformMacOS, "cc", "/b")
		require.ErrorIs(t, err, domain.ErrThinWithoutInvocations)
	})
}

func TestLinkIntent_EncodeDecode(t *testing.T) {
	intent, err := domain.NewLinkIntent(domain.BaseMode(), domain.PlatformWindows, "link.exe", "/b/cache")
	require.NoError(t, err)

	payload, err := intent.Encode()
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"action":"base-link","platform":"windows","linker":"link.exe","incremental_dir":"/b/cache","strip":true}`,
		payload,
	)

	decoded, err := domain.DecodeLinkIntent(payload)
	require.NoError(t, err)
	assert.Equal(t, intent, decoded)
}

func TestDecodeLinkIntent_Errors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr error
	}{
		{
			name:    "not json",
			payload: "base-link",
			wantErr: domain.ErrLinkIntentDecodeFailed,
		},
		{
			name:    "thin without patch target",
			payload: `{"action":"thin-link","platform":"linux","linker":"cc","incremental_dir":"/b"}`,
			wantErr: domain.ErrPatchTargetRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.DecodeLinkIntent(tt.payload)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("unknown action", func(t *testing.T) {
		_, err := domain.DecodeLinkIntent(`{"action":"relink"}`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrUnknownLinkAction.Error())
	})
}
