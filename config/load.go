// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML file and applies it on top of a copy of base. Keys
// absent from the file keep their value from base; a headers key replaces
// the whole header map.
func Load(fs afero.Fs, path string, base *Config) (*Config, error) {
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	c, err := parse(b, base)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return c, nil
}

func parse(b []byte, base *Config) (*Config, error) {
	c := base.Clone()

	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		// Empty file.
		return c, nil
	}
	if hasKey(doc.Content[0], "headers") {
		c.Headers = nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return c, nil
}

func hasKey(n *yaml.Node, key string) bool {
	if n.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return true
		}
	}
	return false
}
