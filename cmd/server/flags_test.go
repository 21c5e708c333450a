package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Run("Переменная задана", func(t *testing.T) {
		t.Setenv("MOTORMATE_TEST_VAR", "значение")
		assert.Equal(t, "значение", getEnv("MOTORMATE_TEST_VAR", "по умолчанию"))
	})

	t.Run("Переменная не задана", func(t *testing.T) {
		assert.Equal(t, "по умолчанию", getEnv("MOTORMATE_TEST_VAR_MISSING", "по умолчанию"))
	})

	t.Run("Пустое значение переменной имеет приоритет", func(t *testing.T) {
		t.Setenv("MOTORMATE_TEST_VAR_EMPTY", "")
		assert.Equal(t, "", getEnv("MOTORMATE_TEST_VAR_EMPTY", "по умолчанию"))
	})
}

func TestConfigUseTLS(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config
		expected bool
	}{
		{"Сертификат и ключ заданы", config{CertFile: "cert.pem", KeyFile: "key.pem"}, true},
		{"Ничего не задано", config{}, false},
		{"Только сертификат", config{CertFile: "cert.pem"}, false},
		{"Только ключ", config{KeyFile: "key.pem"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cfg.useTLS())
		})
	}
}
