package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"cmakecheck/internal/diag"
	"cmakecheck/internal/source"
)

// Bump when the payload format or the rule catalogue changes; stale
// entries are treated as misses.
const diskCacheSchemaVersion uint16 = 2

// DiskCache memoizes per-file check results keyed by content hash.
// Findings are byte-offset based, so a hash hit rehydrates exactly.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// cachedFinding is a Diagnostic without the FileID, which differs between
// runs; spans keep only their offsets. Notes always point into the same
// file as the finding.
type cachedFinding struct {
	Severity uint8
	Code     uint16
	Message  string
	Start    uint32
	End      uint32
	Rule     string
	Notes    []cachedNote
	Remedy   *diag.Remedy
}

type cachedNote struct {
	Start uint32
	End   uint32
	Msg   string
}

// DiskPayload stores one file's check outcome.
type DiskPayload struct {
	Schema     uint16
	Findings   []cachedFinding
	Suppressed int
	// ParseFailed marks files whose parse diagnostics are cached instead
	// of rule findings.
	ParseFailed bool
}

// OpenDiskCache initializes and returns a disk cache at the standard
// location ($XDG_CACHE_HOME or ~/.cache).
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt is OpenDiskCache with an explicit directory, for tests.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key [32]byte) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "files", hexKey+".mp")
}

// Put serializes and atomically writes a payload.
func (c *DiskCache) Put(key [32]byte, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a payload; ok is false on miss or schema mismatch.
func (c *DiskCache) Get(key [32]byte, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the cache, useful after catalogue changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// resultToPayload converts a FileResult for caching.
func resultToPayload(fr *FileResult) *DiskPayload {
	payload := &DiskPayload{
		Schema:      diskCacheSchemaVersion,
		Suppressed:  fr.Suppressed,
		ParseFailed: fr.Bag.HasParseErrors(),
		Findings:    make([]cachedFinding, 0, fr.Bag.Len()),
	}
	for _, d := range fr.Bag.Items() {
		cf := cachedFinding{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
			Rule:     d.Rule,
			Remedy:   d.Remedy,
		}
		for _, n := range d.Notes {
			cf.Notes = append(cf.Notes, cachedNote{Start: n.Span.Start, End: n.Span.End, Msg: n.Msg})
		}
		payload.Findings = append(payload.Findings, cf)
	}
	return payload
}

// payloadToResult rebinds cached findings to the current FileSet entry.
func payloadToResult(payload *DiskPayload, path string, id source.FileID) FileResult {
	bag := diag.NewBag(0)
	for _, f := range payload.Findings {
		d := diag.Diagnostic{
			Severity: diag.Severity(f.Severity),
			Code:     diag.Code(f.Code),
			Message:  f.Message,
			Primary:  source.Span{File: id, Start: f.Start, End: f.End},
			Rule:     f.Rule,
			Remedy:   f.Remedy,
		}
		for _, n := range f.Notes {
			d = d.WithNote(source.Span{File: id, Start: n.Start, End: n.End}, n.Msg)
		}
		bag.Add(d)
	}
	return FileResult{
		Path:       path,
		FileID:     id,
		Bag:        bag,
		Suppressed: payload.Suppressed,
		FromCache:  true,
	}
}
