package pack

import (
	"io"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/mogaika/kcl_browser/status"
	"github.com/mogaika/kcl_browser/vfs"
)

type FileLoader func(name string, r io.Reader) (interface{}, error)

var gHandlers map[string]FileLoader = make(map[string]FileLoader, 0)

func SetHandler(format string, ldr FileLoader) {
	gHandlers[strings.ToUpper(format)] = ldr
}

func HaveHandler(name string) bool {
	_, found := gHandlers[strings.ToUpper(filepath.Ext(name))]
	return found
}

func CallHandler(name string, r io.Reader) (interface{}, error) {
	ext := strings.ToUpper(filepath.Ext(name))

	if h, found := gHandlers[ext]; found {
		return h(name, r)
	} else {
		return nil, errors.Errorf("[pack] Cannot find handler for '%s' extension", ext)
	}
}

// ListLoadable returns sorted names of directory files that have a handler
func ListLoadable(d vfs.Directory) ([]string, error) {
	names, err := d.List()
	if err != nil {
		return nil, err
	}
	result := make([]string, 0, len(names))
	for _, name := range names {
		if HaveHandler(name) {
			result = append(result, name)
		}
	}
	sort.Strings(result)
	return result, nil
}

type cacheEntry struct {
	size     int64
	modTime  time.Time
	instance interface{}
}

type InstanceCache struct {
	lock    sync.Mutex
	entries map[string]*cacheEntry
}

func NewInstanceCache() *InstanceCache {
	return &InstanceCache{entries: make(map[string]*cacheEntry)}
}

func (c *InstanceCache) Invalidate(name string) {
	c.lock.Lock()
	defer c.lock.Unlock()
	delete(c.entries, name)
}

// GetInstance decodes file with registered handler, reusing previous
// result while file size and modification time stay the same
func (c *InstanceCache) GetInstance(d vfs.Directory, fileName string) (interface{}, error) {
	f, err := vfs.DirectoryGetFile(d, fileName)
	if err != nil {
		c.Invalidate(fileName)
		return nil, errors.Wrapf(err, "[pack] Cannot get file '%s'", fileName)
	}

	size, modTime := f.Size(), f.ModTime()

	c.lock.Lock()
	defer c.lock.Unlock()

	if e, ok := c.entries[fileName]; ok && e.size == size && e.modTime.Equal(modTime) {
		return e.instance, nil
	}

	r, err := vfs.OpenFileAndGetReader(f)
	if err != nil {
		return nil, errors.Wrapf(err, "[pack] Cannot get instance of '%s'", fileName)
	}
	defer f.Close()

	status.Progress(0, "Decoding %s", fileName)
	inst, err := CallHandler(fileName, r)
	if err != nil {
		delete(c.entries, fileName)
		return nil, errors.Wrapf(err, "[pack] Handler error")
	}
	status.Progress(1, "Decoded %s", fileName)

	c.entries[fileName] = &cacheEntry{size: size, modTime: modTime, instance: inst}
	return inst, nil
}
