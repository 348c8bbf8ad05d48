package fourcc

import (
	"fmt"
	"sort"
)

// Family groups known codes by where they show up.
type Family string

const (
	FamilyDRM   Family = "drm"   // Linux DRM / dmabuf pixel formats
	FamilyVideo Family = "video" // codec tags in AVI/MP4/V4L2
	FamilyRIFF  Family = "riff"  // RIFF chunk identifiers
	FamilyUser  Family = "user"  // added through configuration
)

// Entry describes a known code.
type Entry struct {
	Code   Code
	Name   string
	Family Family
}

// Registry maps codes to their descriptions. It is immutable once built and
// safe for concurrent use.
type Registry struct {
	entries map[Code]Entry
}

// builtin codes. DRM names follow include/uapi/drm/drm_fourcc.h.
var builtin = []struct {
	code   string
	name   string
	family Family
}{
	{"AR24", "ARGB8888", FamilyDRM},
	{"XR24", "XRGB8888", FamilyDRM},
	{"AB24", "ABGR8888", FamilyDRM},
	{"XB24", "XBGR8888", FamilyDRM},
	{"RA24", "RGBA8888", FamilyDRM},
	{"BA24", "BGRA8888", FamilyDRM},
	{"RG16", "RGB565", FamilyDRM},
	{"NV12", "NV12 (2x2 subsampled Cr:Cb plane)", FamilyDRM},
	{"NV21", "NV21 (2x2 subsampled Cb:Cr plane)", FamilyDRM},
	{"YU12", "YUV420 (3 planes)", FamilyDRM},
	{"YV12", "YVU420 (3 planes)", FamilyDRM},
	{"YUYV", "YUYV packed 4:2:2", FamilyDRM},

	{"avc1", "H.264 / AVC (MP4)", FamilyVideo},
	{"H264", "H.264 (AVI)", FamilyVideo},
	{"hvc1", "H.265 / HEVC (MP4)", FamilyVideo},
	{"hev1", "H.265 / HEVC, in-band parameter sets", FamilyVideo},
	{"av01", "AV1", FamilyVideo},
	{"VP80", "VP8", FamilyVideo},
	{"VP90", "VP9", FamilyVideo},
	{"MJPG", "Motion JPEG", FamilyVideo},
	{"XVID", "Xvid MPEG-4 Part 2", FamilyVideo},
	{"DIVX", "DivX MPEG-4 Part 2", FamilyVideo},

	{"RIFF", "RIFF container header", FamilyRIFF},
	{"LIST", "RIFF list chunk", FamilyRIFF},
	{"WAVE", "WAVE form type", FamilyRIFF},
	{"AVI ", "AVI form type", FamilyRIFF},
	{"WEBP", "WebP form type", FamilyRIFF},
	{"fmt ", "WAVE format chunk", FamilyRIFF},
	{"data", "WAVE sample data chunk", FamilyRIFF},
}

// NewRegistry builds a registry from the builtin table plus extra, which maps
// a 4-byte code to its name. Extra entries replace builtins with the same code.
func NewRegistry(extra map[string]string) (*Registry, error) {
	r := &Registry{entries: make(map[Code]Entry, len(builtin)+len(extra))}
	for _, b := range builtin {
		c, err := ParseCode(b.code)
		if err != nil {
			return nil, fmt.Errorf("builtin code: %w", err)
		}
		r.entries[c] = Entry{Code: c, Name: b.name, Family: b.family}
	}
	for s, name := range extra {
		c, err := ParseCode(s)
		if err != nil {
			return nil, fmt.Errorf("configured code: %w", err)
		}
		r.entries[c] = Entry{Code: c, Name: name, Family: FamilyUser}
	}
	return r, nil
}

// Lookup returns the entry for c.
func (r *Registry) Lookup(c Code) (Entry, bool) {
	e, ok := r.entries[c]
	return e, ok
}

// Len returns the number of known codes.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Entries returns every entry ordered by integer value.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return Encode(out[i].Code) < Encode(out[j].Code)
	})
	return out
}
