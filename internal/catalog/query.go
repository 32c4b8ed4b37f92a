package catalog

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"assetgen/internal/domain"
	"assetgen/internal/domain/jsoncfg"
	"assetgen/pkg/zip"
)

// Exister reports whether an output already exists under the assets root.
type Exister interface {
	Exists(key string) (bool, error)
}

// ReportEntry is one line of a listing.
type ReportEntry struct {
	Group      string            `json:"group"`
	Title      string            `json:"title"`
	Category   domain.Category   `json:"category"`
	OutputPath string            `json:"output_path"`
	Dimensions domain.Dimensions `json:"dimensions"`
	Exists     bool              `json:"exists"`
}

// GroupReport lists the entries of one group.
type GroupReport struct {
	Name    string        `json:"name"`
	Entries []ReportEntry `json:"entries"`
}

// Report is the result of List.
type Report struct {
	Groups   []GroupReport `json:"groups"`
	Total    int           `json:"total"`
	Existing int           `json:"existing"`
	Missing  int           `json:"missing"`
}

// List inspects which outputs already exist. It never touches the network.
func List(cat *Catalog, exister Exister) (Report, error) {
	var rep Report
	for _, g := range cat.Groups() {
		gr := GroupReport{Name: g.Name, Entries: make([]ReportEntry, 0, len(g.Specs))}
		for _, s := range g.Specs {
			exists := false
			if exister != nil {
				ok, err := exister.Exists(s.OutputPath)
				if err != nil {
					return Report{}, fmt.Errorf("catalog: list %s: %w", s.OutputPath, err)
				}
				exists = ok
			}
			gr.Entries = append(gr.Entries, ReportEntry{
				Group:      g.Name,
				Title:      s.Title,
				Category:   s.Category,
				OutputPath: s.OutputPath,
				Dimensions: s.Dimensions,
				Exists:     exists,
			})
			rep.Total++
			if exists {
				rep.Existing++
			}
		}
		rep.Groups = append(rep.Groups, gr)
	}
	rep.Missing = rep.Total - rep.Existing
	return rep, nil
}

// SpecFileName maps an output path to its exported document path,
// <group>/<file stem>.json.
func SpecFileName(group, outputPath string) string {
	base := path.Base(outputPath)
	stem := strings.TrimSuffix(base, path.Ext(base))
	return path.Join(group, stem+".json")
}

type exportedDoc struct {
	name string
	data []byte
}

func renderDocuments(cat *Catalog) ([]exportedDoc, error) {
	docs := make([]exportedDoc, 0, cat.Len())
	for _, g := range cat.Groups() {
		for _, s := range g.Specs {
			doc := jsoncfg.FromAssetSpec(s)
			if err := doc.Validate(); err != nil {
				return nil, fmt.Errorf("catalog: export %s: %w", s.OutputPath, err)
			}
			raw, err := doc.Marshal()
			if err != nil {
				return nil, fmt.Errorf("catalog: export %s: %w", s.OutputPath, err)
			}
			docs = append(docs, exportedDoc{name: SpecFileName(g.Name, s.OutputPath), data: raw})
		}
	}
	return docs, nil
}

// Export writes one indented JSON document per asset to
// <dir>/<group>/<stem>.json and returns the number of files written.
func Export(cat *Catalog, dir string) (int, error) {
	if strings.TrimSpace(dir) == "" {
		return 0, fmt.Errorf("catalog: export directory is required")
	}
	docs, err := renderDocuments(cat)
	if err != nil {
		return 0, err
	}
	written := 0
	for _, d := range docs {
		target := filepath.Join(dir, filepath.FromSlash(d.name))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return written, fmt.Errorf("catalog: export mkdir: %w", err)
		}
		if err := os.WriteFile(target, d.data, 0o644); err != nil {
			return written, fmt.Errorf("catalog: export write: %w", err)
		}
		written++
	}
	return written, nil
}

// ExportArchive writes the same documents as Export into a zip stream.
func ExportArchive(cat *Catalog, w io.Writer) (int, error) {
	docs, err := renderDocuments(cat)
	if err != nil {
		return 0, err
	}
	assets := make([]zip.Asset, 0, len(docs))
	for _, d := range docs {
		assets = append(assets, zip.Asset{Filename: d.name, Data: d.data})
	}
	if err := zip.ArchiveAssets(w, assets); err != nil {
		return 0, fmt.Errorf("catalog: export archive: %w", err)
	}
	return len(assets), nil
}
