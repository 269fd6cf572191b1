// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"path/filepath"

	"golang.org/x/net/publicsuffix"
)

// storedCookie is the on-disk form of a session cookie. A cookie jar only
// hands out name and value, so that is all that is kept.
type storedCookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// cookieStore keeps the session between client invocations. An empty path
// keeps it in memory only.
type cookieStore struct {
	jar     http.CookieJar
	baseURL *url.URL
	path    string
}

func newCookieStore(baseURL *url.URL, path string) (*cookieStore, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	s := &cookieStore{jar: jar, baseURL: baseURL, path: path}
	if err = s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *cookieStore) load() error {
	if s.path == "" {
		return nil
	}

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read cookie file: %w", err)
	}

	var stored []storedCookie
	if err = json.Unmarshal(raw, &stored); err != nil {
		return fmt.Errorf("decode cookie file: %w", err)
	}

	cookies := make([]*http.Cookie, 0, len(stored))
	for _, c := range stored {
		cookies = append(cookies, &http.Cookie{Name: c.Name, Value: c.Value, Path: "/"})
	}
	s.jar.SetCookies(s.baseURL, cookies)
	return nil
}

// save writes the current cookies of the server. The file is removed once
// the server has cleared every cookie.
func (s *cookieStore) save() error {
	if s.path == "" {
		return nil
	}

	cookies := s.jar.Cookies(s.baseURL)
	if len(cookies) == 0 {
		if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove cookie file: %w", err)
		}
		return nil
	}

	stored := make([]storedCookie, 0, len(cookies))
	for _, c := range cookies {
		stored = append(stored, storedCookie{Name: c.Name, Value: c.Value})
	}
	raw, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("encode cookie file: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create cookie dir: %w", err)
	}
	if err = os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write cookie file: %w", err)
	}
	return nil
}
