package formguard

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// ExpressionTable maps rule names to compiled patterns. Any class token
// whose method name is not built in is looked up here.
type ExpressionTable map[string]*regexp.Regexp

// FileTypeTable maps group names to the lowercase file extensions the
// file rule accepts for that group.
type FileTypeTable map[string][]string

// DefaultExpressions returns the built-in named patterns: alpha, alphanum,
// domain, email-local, num, phone, and url.
func DefaultExpressions() ExpressionTable {
	return ExpressionTable{
		"alpha":       regexp.MustCompile(`^[a-zA-Z]+$`),
		"alphanum":    regexp.MustCompile(`^[a-zA-Z0-9]+$`),
		"domain":      regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}$`),
		"email-local": regexp.MustCompile(`^.{1,255}$`),
		"num":         regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`),
		"phone":       regexp.MustCompile(`^\+?[0-9][0-9 ().-]{5,19}$`),
		"url":         regexp.MustCompile(`^(https?|ftp)://[^\s/$.?#][^\s]*$`),
	}
}

// DefaultFileTypes returns the built-in extension groups: audio, image,
// pdf, text, html, and video.
func DefaultFileTypes() FileTypeTable {
	return FileTypeTable{
		"audio": {"aac", "aif", "aiff", "flac", "m4a", "mid", "midi", "mp3", "oga", "ogg", "wav", "wma"},
		"image": {"bmp", "gif", "ico", "jpeg", "jpg", "png", "svg", "tif", "tiff", "webp"},
		"pdf":   {"pdf"},
		"text":  {"csv", "log", "md", "txt"},
		"html":  {"htm", "html", "xhtml"},
		"video": {"avi", "m4v", "mkv", "mov", "mp4", "mpeg", "mpg", "ogv", "webm", "wmv"},
	}
}

// tableFile is the YAML shape accepted by LoadTables.
type tableFile struct {
	Expressions map[string]string   `yaml:"expressions"`
	FileTypes   map[string][]string `yaml:"filetypes"`
}

// LoadTables merges expression patterns and file-type groups declared in a
// YAML document into the validator's live tables. Existing entries with the
// same name are replaced. Extensions are lowercased on load.
//
// Document shape:
//
//	expressions:
//	  zip: '^[0-9]{5}$'
//	filetypes:
//	  archive: [zip, tar, gz]
func (v *Validator) LoadTables(r io.Reader) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read tables: %w", err)
	}

	var tf tableFile
	if err := yaml.Unmarshal(raw, &tf); err != nil {
		return fmt.Errorf("parse tables: %w", err)
	}

	for name, pattern := range tf.Expressions {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return errors.Join(ErrBadPattern, fmt.Errorf("expression %q: %w", name, err))
		}
		v.Expressions[name] = re
	}

	for group, exts := range tf.FileTypes {
		lowered := make([]string, len(exts))
		for i, ext := range exts {
			lowered[i] = strings.ToLower(ext)
		}
		v.FileTypes[group] = lowered
	}

	return nil
}
