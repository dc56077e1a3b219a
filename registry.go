package ebcdic

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/derekparker/trie"
)

// registry binds normalized code page names to codecs.
var registry = struct {
	sync.RWMutex
	names *trie.Trie
}{
	names: trie.New(),
}

// Aliases follow the IANA character set registry where one exists.
var builtinAliases = map[Encoding][]string{
	IBM037:   {"cp037", "CCSID00037", "ebcdic-cp-us", "ebcdic-cp-ca", "ebcdic-cp-wt", "ebcdic-cp-nl", "csIBM037"},
	IBM290:   {"cp290", "CCSID00290", "EBCDIC-JP-kana", "csIBM290"},
	EBCDICUK: {"csEBCDICUK"},
	EBCDICUS: {"csEBCDICUS"},
	EBCDICES: {"csEBCDICES"},
}

func init() {
	for _, enc := range Encodings() {
		if err := Register(enc.Codec(), builtinAliases[enc]...); err != nil {
			panic(err)
		}
	}
}

// NormalizeName folds a code page name for lookup: lower case, with '-',
// '_', '.' and blanks removed. "EBCDIC-JP-kana" becomes "ebcdicjpkana".
func NormalizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, ch := range strings.ToLower(name) {
		switch ch {
		case '-', '_', '.', ' ', '\t':
			continue
		}
		b.WriteRune(ch)
	}
	return b.String()
}

// Register makes c available to Lookup under its own name and under every
// alias. It fails if one of the names is bound to a different codec already;
// in that case no name is registered.
func Register(c *Codec, aliases ...string) error {
	if c == nil {
		return fmt.Errorf("cannot register nil code page")
	}
	keys := make([]string, 0, len(aliases)+1)
	for _, name := range append([]string{c.name}, aliases...) {
		key := NormalizeName(name)
		if key == "" {
			return fmt.Errorf("code page %s: empty alias %q", c.name, name)
		}
		keys = append(keys, key)
	}
	registry.Lock()
	defer registry.Unlock()
	for _, key := range keys {
		if node, found := registry.names.Find(key); found {
			if other := node.Meta().(*Codec); other != c {
				return fmt.Errorf("code page name %q already bound to %s", key, other.name)
			}
		}
	}
	for _, key := range keys {
		registry.names.Add(key, c)
	}
	tracer().Debugf("registered code page %s with %d names", c.name, len(keys))
	return nil
}

// Lookup finds a code page by name or alias, ignoring case and punctuation.
func Lookup(name string) (*Codec, bool) {
	registry.RLock()
	defer registry.RUnlock()
	node, found := registry.names.Find(NormalizeName(name))
	if !found {
		return nil, false
	}
	return node.Meta().(*Codec), true
}

// Names returns all registered normalized names starting with prefix,
// sorted. An empty prefix lists every name.
func Names(prefix string) []string {
	registry.RLock()
	defer registry.RUnlock()
	var names []string
	if prefix = NormalizeName(prefix); prefix == "" {
		names = registry.names.Keys()
	} else {
		names = registry.names.PrefixSearch(prefix)
	}
	sort.Strings(names)
	return names
}
