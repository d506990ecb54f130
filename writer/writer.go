// Package writer serializes the model representation into HWPX
// archives.
//
// The generated archive carries the fixed part set the consuming
// application expects: the mimetype entry (stored, first), version and
// container descriptors, the package descriptor with its manifest and
// spine, the header boilerplate, one XML part per section, settings,
// and one BinData entry per embedded image.
//
// Write never leaves the target path half-written. The archive is
// serialized to a co-located temporary file, validated, and renamed
// onto the target; an existing target is backed up first and restored
// on any failure.
package writer

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tsawler/hwpx/model"
)

// Writer errors.
var (
	// ErrInvalidArchive reports that the serialized archive failed
	// structural validation before replacing the target.
	ErrInvalidArchive = errors.New("writer: generated archive is not a valid ZIP container")
	// ErrSaveFailed reports a failure during the replace protocol.
	ErrSaveFailed = errors.New("writer: save failed")
)

// verifyArchive checks that the file at path is a structurally valid
// ZIP container. A variable so tests can force validation failures.
var verifyArchive = func(path string) error {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return err
	}
	return zr.Close()
}

// renameFile moves the validated archive into place. A variable so
// tests can force rename failures.
var renameFile = os.Rename

// Write serializes doc to an HWPX archive at path, replacing any
// existing file atomically. On success the document's path is updated
// and its dirty flag cleared.
func Write(doc *model.Document, path string) error {
	tmp := fmt.Sprintf("%s.tmp.%d", path, os.Getpid())
	backup := path + ".backup"

	if err := writeArchive(doc, tmp); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	if err := verifyArchive(tmp); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: %v", ErrInvalidArchive, err)
	}

	backedUp := false
	if _, err := os.Stat(path); err == nil {
		if err := copyFile(path, backup); err != nil {
			os.Remove(tmp)
			return fmt.Errorf("%w: backing up existing file: %v", ErrSaveFailed, err)
		}
		backedUp = true
	}

	if err := renameFile(tmp, path); err != nil {
		os.Remove(tmp)
		if backedUp {
			if rerr := renameFile(backup, path); rerr != nil {
				return fmt.Errorf("%w: %v (restoring backup also failed: %v)", ErrSaveFailed, err, rerr)
			}
		}
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	if backedUp {
		os.Remove(backup)
	}

	doc.SetPath(path)
	doc.SetModified(false)
	return nil
}

// writeArchive serializes the full part set to a new file at path.
func writeArchive(doc *model.Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	zw := zip.NewWriter(f)

	// The mimetype entry must be first and stored uncompressed.
	w, err := zw.CreateHeader(&zip.FileHeader{Name: "mimetype", Method: zip.Store})
	if err != nil {
		return err
	}
	if _, err := w.Write([]byte(mimetype)); err != nil {
		return err
	}

	parts := []struct {
		name    string
		content []byte
	}{
		{"version.xml", []byte(versionXML)},
		{"META-INF/container.xml", []byte(containerXML)},
		{"META-INF/manifest.xml", []byte(manifestXML)},
		{"Contents/content.hpf", buildPackage(doc)},
		{"Contents/header.xml", buildHeader(doc)},
	}
	for _, p := range parts {
		if err := addEntry(zw, p.name, p.content); err != nil {
			return err
		}
	}

	ids := newIDGen()
	for i, sec := range doc.Sections {
		data := buildSection(sec, i, ids)
		if err := addEntry(zw, fmt.Sprintf("Contents/section%d.xml", i), data); err != nil {
			return err
		}
	}

	if err := addEntry(zw, "settings.xml", []byte(settingsXML)); err != nil {
		return err
	}

	if err := addBinData(zw, doc); err != nil {
		return err
	}

	if err := zw.Close(); err != nil {
		return err
	}
	return f.Close()
}

// addBinData copies each image's source bytes into the archive under
// its binary id. Images whose source file has gone missing since
// insertion are skipped without error; the document remains valid
// without them.
func addBinData(zw *zip.Writer, doc *model.Document) error {
	written := make(map[string]bool)
	for _, img := range documentImages(doc) {
		name := "BinData/" + binDataName(img)
		if written[name] {
			continue
		}
		data, err := os.ReadFile(img.Path)
		if err != nil {
			continue
		}
		if err := addEntry(zw, name, data); err != nil {
			return err
		}
		written[name] = true
	}
	return nil
}

func addEntry(zw *zip.Writer, name string, content []byte) error {
	w, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = w.Write(content)
	return err
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// documentImages returns all images in section order.
func documentImages(doc *model.Document) []*model.Image {
	var images []*model.Image
	for _, sec := range doc.Sections {
		images = append(images, sec.Images...)
	}
	return images
}

// idGen hands out paragraph ids, unique within one write. Consumers
// only require uniqueness within the document instance, so a counter
// keeps output deterministic.
type idGen struct {
	next int
}

func newIDGen() *idGen {
	return &idGen{next: 1}
}

func (g *idGen) id() string {
	id := g.next
	g.next++
	return fmt.Sprintf("%d", id)
}
