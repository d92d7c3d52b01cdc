package web

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mogaika/kcl_browser/pack/kcl"
	"github.com/mogaika/kcl_browser/status"
	"github.com/mogaika/kcl_browser/vfs"
)

// writeTestCourse stores three identical faces in plane x=0 typed road, wall and cannon
func writeTestCourse(t *testing.T, path string) {
	var buf bytes.Buffer
	write := func(v interface{}) {
		require.NoError(t, binary.Write(&buf, binary.BigEndian, v))
	}

	const verticesCount, normalsCount, prismsCount = 1, 4, 3
	section1 := uint32(kcl.HEADER_SIZE)
	section2 := section1 + verticesCount*kcl.VERTEX_SIZE
	prismsStart := section2 + normalsCount*kcl.NORMAL_SIZE
	write([4]uint32{section1, section2, prismsStart - kcl.NORMALS_TRAILER_SIZE, prismsStart + prismsCount*kcl.PRISM_SIZE})

	write([3]float32{0, 0, 0})
	write([][3]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {0, 0.70710678, 0.70710678}})
	for _, flags := range []uint16{0, 12, kcl.TYPE_CANNON_ACTIVATOR} {
		write(float32(10))
		write([6]uint16{0, 0, 1, 2, 3, flags})
	}

	require.NoError(t, ioutil.WriteFile(path, buf.Bytes(), 0666))
}

func newTestServer(t *testing.T) (*httptest.Server, func()) {
	dir, err := ioutil.TempDir("", "kclweb")
	require.NoError(t, err)

	writeTestCourse(t, filepath.Join(dir, "course.kcl"))
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "readme.txt"), []byte("not a course"), 0666))

	srv := httptest.NewServer(NewRouter(vfs.NewDirectoryDriver(dir)))
	return srv, func() {
		srv.Close()
		os.RemoveAll(dir)
	}
}

func get(t *testing.T, srv *httptest.Server, path string) (*http.Response, []byte) {
	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := ioutil.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestHandlerList(t *testing.T) {
	srv, cleanup := newTestServer(t)
	defer cleanup()

	resp, body := get(t, srv, "/json/kcl")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var files []string
	require.NoError(t, json.Unmarshal(body, &files))
	assert.Equal(t, []string{"course.kcl"}, files)
}

func TestHandlerKcl(t *testing.T) {
	srv, cleanup := newTestServer(t)
	defer cleanup()

	var tests = []struct {
		query  string
		active int
	}{
		{"", 3},
		{"?walls=0", 2},
		{"?walls=0&effects=false", 1},
		{"?walls=1&death=0&invisible=0", 3},
	}

	for _, test := range tests {
		resp, body := get(t, srv, "/json/kcl/course.kcl"+test.query)
		require.Equal(t, http.StatusOK, resp.StatusCode, test.query)

		var view kcl.View
		require.NoError(t, json.Unmarshal(body, &view), test.query)
		assert.Equal(t, 3, view.Summary.Triangles, test.query)
		assert.Equal(t, test.active, view.Summary.Active, test.query)
		assert.Len(t, view.Triangles, 3, test.query)
	}

	_, body := get(t, srv, "/json/kcl/course.kcl?walls=0&active=1")
	var view kcl.View
	require.NoError(t, json.Unmarshal(body, &view))
	require.Len(t, view.Triangles, 2)
	assert.Equal(t, 0, view.Triangles[0].Index)
	assert.Equal(t, 2, view.Triangles[1].Index)
}

func TestHandlerKclErrors(t *testing.T) {
	srv, cleanup := newTestServer(t)
	defer cleanup()

	resp, body := get(t, srv, "/json/kcl/course.kcl?highlight=9")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "error")

	resp, _ = get(t, srv, "/json/kcl/course.kcl?walls=maybe")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = get(t, srv, "/json/kcl/missing.kcl")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, string(body), "error")

	resp, _ = get(t, srv, "/json/kcl/readme.txt")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestHandlerTriggers(t *testing.T) {
	srv, cleanup := newTestServer(t)
	defer cleanup()

	resp, body := get(t, srv, "/json/kcl/course.kcl/triggers/17")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var result struct {
		Type    uint8
		Name    string
		Indexes []int
	}
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, uint8(17), result.Type)
	assert.Equal(t, "Cannon Activator", result.Name)
	assert.Equal(t, []int{2}, result.Indexes)

	resp, _ = get(t, srv, "/json/kcl/course.kcl/triggers/32")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandlerRaycast(t *testing.T) {
	srv, cleanup := newTestServer(t)
	defer cleanup()

	resp, body := get(t, srv, "/json/kcl/course.kcl/raycast?o=5,-1,-1&d=-1,0,0&walls=0")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var hit kcl.Hit
	require.NoError(t, json.Unmarshal(body, &hit))
	assert.Equal(t, 0, hit.Index)
	assert.InDelta(t, 5.0, hit.Distance, 1e-6)

	_, body = get(t, srv, "/json/kcl/course.kcl/raycast?o=5,-1,-1&d=1,0,0")
	assert.Equal(t, "null", string(body))

	resp, _ = get(t, srv, "/json/kcl/course.kcl/raycast?o=5,-1&d=1,0,0")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandlerDump(t *testing.T) {
	srv, cleanup := newTestServer(t)
	defer cleanup()

	resp, body := get(t, srv, "/dump/kcl/course.kcl/obj?walls=0")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "course.kcl.obj")
	assert.Contains(t, string(body), "o t00_Road")
	assert.NotContains(t, string(body), "t12_Wall")

	resp, body = get(t, srv, "/dump/kcl/course.kcl/glb")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, bytes.HasPrefix(body, []byte("glTF")))

	resp, _ = get(t, srv, "/dump/kcl/course.kcl/fbx")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStatusWebsocket(t *testing.T) {
	srv, cleanup := newTestServer(t)
	defer cleanup()

	before := status.ClientsCount()
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws/status", nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return status.ClientsCount() == before+1 }, 5*time.Second, 10*time.Millisecond)

	status.Info("hello %s", "websocket")

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	for {
		_, msg, err := conn.ReadMessage()
		require.NoError(t, err)
		if strings.Contains(string(msg), "hello websocket") {
			break
		}
	}

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return status.ClientsCount() == before }, 5*time.Second, 10*time.Millisecond)
}
