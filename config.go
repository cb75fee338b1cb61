package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
)

// toolConfig mirrors the apply flag surface in TOML form. Pointer fields
// distinguish "absent from the file" from a zero value.
type toolConfig struct {
	Base           *string `toml:"base"`
	Out            *string `toml:"out"`
	Dest           *string `toml:"dest"`
	LoadMaps       *bool   `toml:"load_maps"`
	IdentityMap    *bool   `toml:"identity_map"`
	AddComment     *bool   `toml:"add_comment"`
	IncludeContent *bool   `toml:"include_content"`
	SourceRoot     *string `toml:"source_root"`
	URLPrefix      *string `toml:"url_prefix"`
	Debug          *bool   `toml:"debug"`
}

// loadConfigFile merges a TOML config file under the flags: a value from the
// file applies only when the corresponding flag was not set explicitly.
func loadConfigFile(path string, fs *pflag.FlagSet, o *applyOptions) error {
	var c toolConfig
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}

	setString := func(flag string, dst *string, v *string) {
		if v != nil && !fs.Changed(flag) {
			*dst = *v
		}
	}
	setBool := func(flag string, dst *bool, v *bool) {
		if v != nil && !fs.Changed(flag) {
			*dst = *v
		}
	}

	setString("base", &o.base, c.Base)
	setString("out", &o.out, c.Out)
	setString("dest", &o.dest, c.Dest)
	setString("source-root", &o.sourceRoot, c.SourceRoot)
	setString("url-prefix", &o.urlPrefix, c.URLPrefix)
	setBool("load-maps", &o.loadMaps, c.LoadMaps)
	setBool("identity-map", &o.identityMap, c.IdentityMap)
	setBool("add-comment", &o.addComment, c.AddComment)
	setBool("include-content", &o.includeContent, c.IncludeContent)
	setBool("debug", &o.debug, c.Debug)
	return nil
}
