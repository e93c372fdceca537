package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("LUNCH_TEST_DIR", "/srv/lunch")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "tilde", in: "~", want: home},
		{name: "tilde prefix", in: "~/lunch/restaurants.json", want: filepath.Join(home, "lunch", "restaurants.json")},
		{name: "env var", in: "$LUNCH_TEST_DIR/data.yaml", want: "/srv/lunch/data.yaml"},
		{name: "plain", in: "restaurants.json", want: "restaurants.json"},
		{name: "tilde in the middle", in: "a/~/b", want: "a/~/b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}

func TestDir(t *testing.T) {
	dir, err := Dir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(".config", "lunch"), filepath.Join(filepath.Base(filepath.Dir(dir)), filepath.Base(dir)))
}
