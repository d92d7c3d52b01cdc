package web

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/mogaika/kcl_browser/config"
	"github.com/mogaika/kcl_browser/pack"
	"github.com/mogaika/kcl_browser/pack/kcl"
	"github.com/mogaika/kcl_browser/status"
	"github.com/mogaika/kcl_browser/utils/gltfutils"
	"github.com/mogaika/kcl_browser/webutils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func parseBoolParam(q url.Values, key string, dst **bool) error {
	if !q.Has(key) {
		return nil
	}
	v, err := strconv.ParseBool(q.Get(key))
	if err != nil {
		return errors.Wrapf(err, "param %q", key)
	}
	*dst = &v
	return nil
}

// ParseClassifyQuery overrides server default classification with request params
func ParseClassifyQuery(q url.Values) (config.ClassifyConfig, error) {
	cc := config.GetClassify()

	for _, p := range []struct {
		key string
		dst **bool
	}{
		{"walls", &cc.EnableWalls},
		{"death", &cc.EnableDeathBarriers},
		{"invisible", &cc.EnableInvisible},
		{"effects", &cc.EnableEffects},
		{"colors", &cc.EnableColors},
	} {
		if err := parseBoolParam(q, p.key, p.dst); err != nil {
			return cc, err
		}
	}

	if q.Has("highlight") {
		mode, err := strconv.Atoi(q.Get("highlight"))
		if err != nil {
			return cc, errors.Wrapf(err, "param %q", "highlight")
		}
		cc.Highlighter = config.Highlight(config.HighlightMode(mode))
	}

	return cc, cc.Validate()
}

func parseVec3(s string) (mgl64.Vec3, error) {
	var v mgl64.Vec3
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return v, errors.Errorf("vector %q must have 3 components", s)
	}
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return v, errors.Wrapf(err, "vector %q", s)
		}
		v[i] = f
	}
	return v, nil
}

func getKcl(file string) (*kcl.Kcl, error) {
	inst, err := ServerCache.GetInstance(ServerDirectory, file)
	if err != nil {
		return nil, err
	}
	k, ok := inst.(*kcl.Kcl)
	if !ok {
		return nil, errors.Errorf("File %s is not a collision file", file)
	}
	return k, nil
}

// getClassifiedKcl returns classified copy, cached instance stays untouched
func getClassifiedKcl(w http.ResponseWriter, r *http.Request) (*kcl.Kcl, bool) {
	file := mux.Vars(r)["file"]

	cc, err := ParseClassifyQuery(r.URL.Query())
	if err != nil {
		webutils.WriteBadRequest(w, err)
		return nil, false
	}

	k, err := getKcl(file)
	if err != nil {
		status.Error("Failed to load %s: %v", file, err)
		webutils.WriteError(w, err)
		return nil, false
	}

	k = k.Clone()
	k.Classify(&cc)
	return k, true
}

func HandlerAjaxList(w http.ResponseWriter, r *http.Request) {
	if files, err := pack.ListLoadable(ServerDirectory); err != nil {
		webutils.WriteError(w, err)
	} else {
		webutils.WriteJson(w, files)
	}
}

func HandlerAjaxKcl(w http.ResponseWriter, r *http.Request) {
	k, ok := getClassifiedKcl(w, r)
	if !ok {
		return
	}
	status.Info("Loaded %s: %d triangles, %d active", mux.Vars(r)["file"], len(k.Triangles), k.ActiveCount())
	webutils.WriteJson(w, k.Marshal(r.URL.Query().Get("active") == "1"))
}

func HandlerAjaxTriggers(w http.ResponseWriter, r *http.Request) {
	typeCode, err := strconv.ParseUint(mux.Vars(r)["type"], 0, 8)
	if err != nil || typeCode >= kcl.TYPES_COUNT {
		webutils.WriteBadRequest(w, errors.Errorf("type '%s' must be in range [0, %d)", mux.Vars(r)["type"], kcl.TYPES_COUNT))
		return
	}

	k, err := getKcl(mux.Vars(r)["file"])
	if err != nil {
		webutils.WriteError(w, err)
		return
	}

	webutils.WriteJson(w, struct {
		Type    uint8  `json:"type"`
		Name    string `json:"name"`
		Indexes []int  `json:"indexes"`
	}{
		Type:    uint8(typeCode),
		Name:    kcl.TypeTable[typeCode].Name,
		Indexes: k.TriggersOfType(uint8(typeCode)),
	})
}

func HandlerAjaxRaycast(w http.ResponseWriter, r *http.Request) {
	origin, err := parseVec3(r.URL.Query().Get("o"))
	if err != nil {
		webutils.WriteBadRequest(w, err)
		return
	}
	dir, err := parseVec3(r.URL.Query().Get("d"))
	if err != nil {
		webutils.WriteBadRequest(w, err)
		return
	}

	k, ok := getClassifiedKcl(w, r)
	if !ok {
		return
	}

	hit, found := k.RaycastActive(origin, dir)
	if !found {
		webutils.WriteJson(w, nil)
		return
	}
	webutils.WriteJson(w, &hit)
}

func HandlerDumpKcl(w http.ResponseWriter, r *http.Request) {
	file := mux.Vars(r)["file"]
	format := mux.Vars(r)["format"]

	k, ok := getClassifiedKcl(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	switch format {
	case "obj":
		if err := k.ExportObj(&buf, true); err != nil {
			webutils.WriteError(w, err)
			return
		}
	case "glb":
		if err := gltfutils.ExportBinary(&buf, k.ExportGLTF()); err != nil {
			webutils.WriteError(w, errors.Wrapf(err, "Failed to export gltf"))
			return
		}
	default:
		webutils.WriteBadRequest(w, fmt.Errorf("Unknown export format %q", format))
		return
	}
	webutils.WriteFile(w, &buf, file+"."+format)
}

func HandlerStatusWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// upgrader already replied with error
		return
	}
	status.NewClient(conn)
}
