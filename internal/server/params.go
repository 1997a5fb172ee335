package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/matzehuels/logruler/pkg/errors"
	"github.com/matzehuels/logruler/pkg/preset"
	"github.com/matzehuels/logruler/pkg/render"
	"github.com/matzehuels/logruler/pkg/ruler"
)

// paramsFromQuery builds ruler parameters from a request's query
// string, starting from the requested preset (default parameters when
// none is given) and applying per-field overrides. It also returns the
// SVG options and PNG scale factor encoded in the query.
func (s *Server) paramsFromQuery(r *http.Request) (ruler.Params, []render.SVGOption, float64, error) {
	q := r.URL.Query()

	p := ruler.Default()
	if name := q.Get("preset"); name != "" {
		ps, err := preset.Resolve(name, s.presets)
		if err != nil {
			return ruler.Params{}, nil, 0, err
		}
		p = ps.Params()
	}

	if err := applyQuery(&p, q); err != nil {
		return ruler.Params{}, nil, 0, err
	}
	if err := p.Validate(); err != nil {
		return ruler.Params{}, nil, 0, err
	}

	var svgOpts []render.SVGOption
	if q.Get("comments") == "false" {
		svgOpts = append(svgOpts, render.WithoutComments())
	}

	scale := 2.0
	if v := q.Get("scale"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			return ruler.Params{}, nil, 0, errors.New(errors.ErrCodeInvalidParams, "invalid scale %q", v)
		}
		scale = f
	}

	return p, svgOpts, scale, nil
}

func applyQuery(p *ruler.Params, q url.Values) error {
	if v := q.Get("marks"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.New(errors.ErrCodeInvalidParams, "invalid marks %q", v)
		}
		p.Marks = n
	}
	if v := q.Get("color"); v != "" {
		p.Color = v
	}

	fields := []struct {
		name string
		dst  *float64
	}{
		{"width", &p.Width},
		{"height", &p.Height},
		{"margin", &p.Margin},
		{"baseline", &p.BaselineY},
		{"baseline_thickness", &p.BaselineThickness},
		{"mark_thickness", &p.MarkThickness},
		{"tall", &p.TallHeight},
		{"medium", &p.MediumHeight},
		{"short", &p.ShortHeight},
	}
	for _, f := range fields {
		v := q.Get(f.name)
		if v == "" {
			continue
		}
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.New(errors.ErrCodeInvalidParams, "invalid %s %q", f.name, v)
		}
		*f.dst = x
	}
	return nil
}

// writeError maps coded errors to HTTP statuses and writes a JSON body.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidParams, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidColor, errors.ErrCodeInvalidPreset, errors.ErrCodeInvalidPath:
		status = http.StatusBadRequest
	case errors.ErrCodePresetNotFound, errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": errors.UserMessage(err),
		"code":  string(errors.GetCode(err)),
	})
}
