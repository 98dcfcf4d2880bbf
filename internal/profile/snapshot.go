package profile

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaJSON string

var documentSchema = jsonschema.MustCompileString("legion-profiles.schema.json", schemaJSON)

// entry is the on-disk shape of one profile: {"programs": [...]}.
type entry struct {
	Programs []string `json:"programs"`
}

// decodeDocument validates raw backing-file content and converts it to profiles.
func decodeDocument(data []byte) (map[string]Profile, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("parse: trailing data after top-level value")
	}
	if err := documentSchema.Validate(raw); err != nil {
		return nil, err
	}

	var doc map[string]entry
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	out := make(map[string]Profile, len(doc))
	for name, e := range doc {
		out[name] = Profile{Name: name, Programs: clonePrograms(e.Programs)}
	}
	return out, nil
}

func encodeDocument(profiles map[string]Profile) ([]byte, error) {
	doc := make(map[string]entry, len(profiles))
	for name, p := range profiles {
		doc[name] = entry{Programs: clonePrograms(p.Programs)}
	}
	b, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

func readDocument(path string) (map[string]Profile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, ioError("load", path, err)
	}
	profiles, err := decodeDocument(b)
	if err != nil {
		return nil, corruptError(path, err)
	}
	return profiles, nil
}

// writeDocument replaces the backing file via tmp file + fsync + rename so a
// crash mid-write never leaves a half-written store behind.
func writeDocument(op, path string, profiles map[string]Profile) error {
	b, err := encodeDocument(profiles)
	if err != nil {
		return ioError(op, path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return ioError(op, path, err)
	}

	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return ioError(op, path, err)
	}
	if _, err := f.Write(b); err != nil {
		f.Close()
		os.Remove(tmp)
		return ioError(op, path, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return ioError(op, path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return ioError(op, path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return ioError(op, path, err)
	}
	return nil
}
