package sourcemaps

import (
	"encoding/base64"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScanComment(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantValue string
		wantRest  string
		wantOK    bool
	}{
		{
			name:      "line comment",
			content:   "console.log(1);\n//# sourceMappingURL=app.js.map\n",
			wantValue: "app.js.map",
			wantRest:  "console.log(1);",
			wantOK:    true,
		},
		{
			name:      "block comment",
			content:   "body{}\n/*# sourceMappingURL=app.css.map */\n",
			wantValue: "app.css.map",
			wantRest:  "body{}",
			wantOK:    true,
		},
		{
			name:      "block syntax recognized in a js file",
			content:   "var a;\n/*# sourceMappingURL=a.map */\n",
			wantValue: "a.map",
			wantRest:  "var a;",
			wantOK:    true,
		},
		{
			name:      "no space variant",
			content:   "x\n//#sourceMappingURL=x.map\n",
			wantValue: "x.map",
			wantRest:  "x",
			wantOK:    true,
		},
		{
			name:      "last occurrence wins",
			content:   "//# sourceMappingURL=old.map\ncode();\n//# sourceMappingURL=new.map\n",
			wantValue: "new.map",
			wantRest:  "//# sourceMappingURL=old.map\ncode();",
			wantOK:    true,
		},
		{
			name:     "no comment",
			content:  "plain content\n",
			wantRest: "plain content\n",
		},
		{
			name:     "url not at line start of its own line",
			content:  "var s = 'sourceMappingURL=fake.map';\n",
			wantRest: "var s = 'sourceMappingURL=fake.map';\n",
		},
		{
			name:      "crlf line endings",
			content:   "code();\r\n//# sourceMappingURL=a.map\r\n",
			wantValue: "a.map",
			wantRest:  "code();",
			wantOK:    true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			value, rest, ok := ScanComment([]byte(test.content))
			if ok != test.wantOK {
				t.Fatalf("Got: ok = %v. Want: %v.", ok, test.wantOK)
			}
			if value != test.wantValue {
				t.Errorf("Got: value %q. Want: %q.", value, test.wantValue)
			}
			if diff := cmp.Diff(test.wantRest, string(rest)); diff != "" {
				t.Errorf("Stripped content differs from expected (-want,+got):\n%s", diff)
			}
		})
	}
}

func TestDecodeDataURI(t *testing.T) {
	payload := `{"version":3,"sources":[],"names":[],"mappings":""}`
	encoded := base64.StdEncoding.EncodeToString([]byte(payload))

	data, ok := decodeDataURI("data:application/json;base64," + encoded)
	if !ok || string(data) != payload {
		t.Errorf("Got: %q, %v. Want: decoded payload and true.", data, ok)
	}

	data, ok = decodeDataURI("data:application/json;charset=utf-8;base64," + encoded)
	if !ok || string(data) != payload {
		t.Errorf("Got: %q, %v. Want: charset variant decoded.", data, ok)
	}

	if _, ok := decodeDataURI("maps/app.js.map"); ok {
		t.Error("Got: path treated as data URI. Want: not a data URI.")
	}

	data, ok = decodeDataURI("data:application/json;base64,!!!")
	if !ok || data != nil {
		t.Errorf("Got: %q, %v. Want: nil payload but recognized as data URI.", data, ok)
	}
}
