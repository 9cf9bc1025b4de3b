package integration

import (
	"errors"
	"strings"
	"testing"

	"github.com/zoobzio/moniker"
	"github.com/zoobzio/moniker/bson"
	"github.com/zoobzio/moniker/json"
	"github.com/zoobzio/moniker/msgpack"
	monikertest "github.com/zoobzio/moniker/testing"
	"github.com/zoobzio/moniker/xml"
	"github.com/zoobzio/moniker/yaml"
)

func codecs() []moniker.Codec {
	return []moniker.Codec{json.New(), xml.New(), yaml.New(), msgpack.New(), bson.New()}
}

func TestConfig_RoundTrip(t *testing.T) {
	for _, c := range codecs() {
		t.Run(c.ContentType(), func(t *testing.T) {
			original := monikertest.SampleConfig()

			data, err := c.Marshal(original)
			if err != nil {
				t.Fatalf("Marshal error: %v", err)
			}

			var restored monikertest.Config
			if err := c.Unmarshal(data, &restored); err != nil {
				t.Fatalf("Unmarshal error: %v", err)
			}

			if !restored.Equal(original) {
				t.Errorf("round trip = %+v, want %+v", restored, original)
			}
		})
	}
}

func TestConfig_TextCodecsCarryNames(t *testing.T) {
	for _, c := range []moniker.Codec{json.New(), xml.New(), yaml.New()} {
		t.Run(c.ContentType(), func(t *testing.T) {
			data, err := c.Marshal(monikertest.SampleConfig())
			if err != nil {
				t.Fatalf("Marshal error: %v", err)
			}
			for _, name := range []string{"active", "idle", "draining"} {
				if !strings.Contains(string(data), name) {
					t.Errorf("encoded document lacks %q:\n%s", name, data)
				}
			}
		})
	}
}

func TestConfig_MarshalOutOfRange(t *testing.T) {
	for _, c := range codecs() {
		t.Run(c.ContentType(), func(t *testing.T) {
			cfg := monikertest.SampleConfig()
			cfg.Mode = moniker.Of(monikertest.ModeEND)

			if _, err := c.Marshal(cfg); !errors.Is(err, moniker.ErrMarshal) {
				t.Errorf("Marshal error = %v, want ErrMarshal", err)
			}
		})
	}
}

func TestConfig_Audit(t *testing.T) {
	if err := moniker.Audit[monikertest.Config](); err != nil {
		t.Errorf("Audit error: %v", err)
	}
}

func TestMode_Properties(t *testing.T) {
	monikertest.Complete(t, monikertest.ModeEND)
	monikertest.RoundTrip[monikertest.Mode](t)
	monikertest.Rejects[monikertest.Mode](t, "Idle", "paused", "")
}
