package redisclient

import (
	"testing"
	"time"
)

func TestKey_UsesNamespace(t *testing.T) {
	tests := []struct {
		namespace string
		parts     []string
		want      string
	}{
		{"eventos", []string{"v1"}, "eventos:v1"},
		{"eventos:", []string{"test", "abc"}, "eventos:test:abc"},
		{"", []string{"v1"}, "v1"},
	}

	for _, tt := range tests {
		c := New(Config{Addr: "127.0.0.1:0", Namespace: tt.namespace})

		if got := c.Key(tt.parts...); got != tt.want {
			t.Fatalf("Key(%v) with namespace %q = %q, want %q", tt.parts, tt.namespace, got, tt.want)
		}

		_ = c.Close()
	}
}

func TestNew_TimeoutDefaults(t *testing.T) {
	c := New(Config{Addr: "127.0.0.1:0"})
	defer c.Close()

	if got := c.Raw().Options().ReadTimeout; got != defaultTimeout {
		t.Fatalf("read timeout = %v, want %v", got, defaultTimeout)
	}

	c2 := New(Config{Addr: "127.0.0.1:0", Timeout: 500 * time.Millisecond})
	defer c2.Close()

	if got := c2.Raw().Options().DialTimeout; got != 500*time.Millisecond {
		t.Fatalf("dial timeout = %v", got)
	}
}
