//go:build unit

package vif

import (
	"net"
	"testing"

	"quantum-portctl/internal/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vishvananda/netlink"
	"go.uber.org/mock/gomock"
)

func TestResolver_AttachmentID(t *testing.T) {
	mac, err := net.ParseMAC("fa:16:3e:12:34:56")
	require.NoError(t, err)

	tests := []struct {
		name    string
		link    netlink.Link
		linkErr error
		want    string
		wantErr string
	}{
		{
			name: "Alias",
			link: &netlink.Dummy{LinkAttrs: netlink.LinkAttrs{Name: "tap0", Alias: " vif-1234 ", HardwareAddr: mac}},
			want: "vif-1234",
		},
		{
			name: "HardwareAddress",
			link: &netlink.Dummy{LinkAttrs: netlink.LinkAttrs{Name: "tap0", HardwareAddr: mac}},
			want: "fa:16:3e:12:34:56",
		},
		{
			name:    "NoIdentity",
			link:    &netlink.Dummy{LinkAttrs: netlink.LinkAttrs{Name: "tap0"}},
			wantErr: "interface tap0 has neither an alias nor a hardware address",
		},
		{
			name:    "LinkNotFound",
			linkErr: assert.AnError,
			wantErr: "failed to resolve attachment for tap0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			networkMgr := mock.NewMockNetworkManager(ctrl)
			networkMgr.EXPECT().GetLinkByName("tap0").Return(tt.link, tt.linkErr)

			id, err := NewResolver(networkMgr).AttachmentID("tap0")
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}
