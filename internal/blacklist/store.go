package blacklist

import (
	"os"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Store serves the three operator-authored block lists. The backing file
// is read on every lookup so external edits take effect immediately; a
// content hash only skips re-tokenizing an unchanged file.
type Store struct {
	AgentsPath string
	IPsPath    string
	RangesPath string

	mu    sync.Mutex
	cache map[string]cachedList
}

type cachedList struct {
	sum    uint64
	tokens []string
}

func NewStore(agentsPath, ipsPath, rangesPath string) *Store {
	return &Store{
		AgentsPath: agentsPath,
		IPsPath:    ipsPath,
		RangesPath: rangesPath,
		cache:      make(map[string]cachedList),
	}
}

// load reads the file fully and splits it into trimmed, non-empty
// tokens. A missing or unreadable file is an empty list, never an error.
func (s *Store) load(path string) []string {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	sum := xxhash.Sum64(data)
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.cache[path]; ok && c.sum == sum {
		return c.tokens
	}

	fields := strings.FieldsFunc(string(data), func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if t := strings.TrimSpace(f); t != "" {
			tokens = append(tokens, t)
		}
	}
	s.cache[path] = cachedList{sum: sum, tokens: tokens}
	return tokens
}

// MatchAgent reports the first blacklist token contained in the user
// agent, case-insensitively.
func (s *Store) MatchAgent(userAgent string) (string, bool) {
	agent := strings.ToLower(userAgent)
	for _, token := range s.load(s.AgentsPath) {
		if strings.Contains(agent, strings.ToLower(token)) {
			return token, true
		}
	}
	return "", false
}

// MatchIP reports an exact blacklist match for the visitor IP.
func (s *Store) MatchIP(ip string) (string, bool) {
	for _, token := range s.load(s.IPsPath) {
		if ip == token {
			return token, true
		}
	}
	return "", false
}

// MatchRange reports the first range token contained in the visitor IP.
// Range tokens are plain prefix strings such as "192.168."; membership
// is substring search, not CIDR arithmetic. Upgrading the list format to
// CIDR is a policy change, not a fix to make here.
func (s *Store) MatchRange(ip string) (string, bool) {
	for _, token := range s.load(s.RangesPath) {
		if strings.Contains(ip, token) {
			return token, true
		}
	}
	return "", false
}
