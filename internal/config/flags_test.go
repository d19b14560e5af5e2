package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr bool
	}{
		{name: "localhost with port", input: "localhost:9090", want: NetAddress{Host: "localhost", Port: 9090}},
		{name: "ip with port", input: "127.0.0.1:8080", want: NetAddress{Host: "127.0.0.1", Port: 8080}},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "non-numeric port", input: "localhost:abc", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "bad host", input: "not-an-ip:9090", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
		})
	}
}

func TestNetAddress_String(t *testing.T) {
	assert.Equal(t, "", (&NetAddress{}).String())
	assert.Equal(t, "localhost:9090", (&NetAddress{Host: "localhost", Port: 9090}).String())
}

func TestSplitAddresses(t *testing.T) {
	assert.Nil(t, splitAddresses(""))
	assert.Nil(t, splitAddresses("   "))
	assert.Equal(t, []string{"a:1", "b:2"}, splitAddresses("a:1,b:2"))
	assert.Equal(t, []string{"a:1", "b:2"}, splitAddresses(" a:1 , b:2 ,"))
}
