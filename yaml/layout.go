// Package yaml loads site layouts from YAML files.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/AlexJubs/helpcenter"
	"gopkg.in/yaml.v3"
)

// LoadLayout reads a layout file. Selectors missing from the file keep
// their DefaultLayout values; unknown keys are rejected.
func LoadLayout(path string) (helpcenter.SiteLayout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return helpcenter.SiteLayout{}, helpcenter.Errorf(helpcenter.EINVALID, "failed to read layout file: %v", err)
	}
	return ParseLayout(data)
}

// ParseLayout decodes a layout document over DefaultLayout.
func ParseLayout(data []byte) (helpcenter.SiteLayout, error) {
	layout := helpcenter.DefaultLayout()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&layout); err != nil && !errors.Is(err, io.EOF) {
		return helpcenter.SiteLayout{}, helpcenter.Errorf(helpcenter.EINVALID, "invalid layout: %v", err)
	}

	if err := layout.Validate(); err != nil {
		return helpcenter.SiteLayout{}, err
	}
	return layout, nil
}
