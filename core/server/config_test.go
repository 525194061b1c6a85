package server_test

import (
	"testing"

	"path-mapper/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     server.Config
		wantErr bool
	}{
		{"Valid", server.Config{Port: "8080", BodyLimitMB: 8}, false},
		{"Port Not Numeric", server.Config{Port: "http", BodyLimitMB: 8}, true},
		{"Port Out Of Range", server.Config{Port: "70000", BodyLimitMB: 8}, true},
		{"Empty Port", server.Config{BodyLimitMB: 8}, true},
		{"No Body Limit", server.Config{Port: "8080"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_BodyLimit(t *testing.T) {
	assert.Equal(t, 2*1024*1024, server.Config{BodyLimitMB: 2}.BodyLimit())
}
