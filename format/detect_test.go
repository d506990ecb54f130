package format

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"document.hwpx", HWPX},
		{"document.HWPX", HWPX},
		{"document.hwp", HWP},
		{"template.hwt", HWT},
		{"report.pdf", PDF},
		{"notes.txt", Unknown},
		{"noextension", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := Detect(tt.filename); got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		format Format
		want   string
		ext    string
	}{
		{HWPX, "HWPX", ".hwpx"},
		{HWP, "HWP", ".hwp"},
		{HWT, "HWT", ".hwt"},
		{PDF, "PDF", ".pdf"},
		{Unknown, "Unknown", ""},
	}
	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		if got := tt.format.Extension(); got != tt.ext {
			t.Errorf("Extension() = %q, want %q", got, tt.ext)
		}
	}
}

func TestDetectFromMagic(t *testing.T) {
	hwpMagic := []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1, 0x00}

	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"hwp compound file", hwpMagic, HWP},
		{"pdf", []byte("%PDF-1.7"), PDF},
		{"zip is ambiguous", []byte{0x50, 0x4B, 0x03, 0x04, 0x00}, Unknown},
		{"short", []byte{0x01}, Unknown},
		{"empty", nil, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic(tt.data); got != tt.want {
				t.Errorf("DetectFromMagic = %v, want %v", got, tt.want)
			}
		})
	}
}

func buildZip(t *testing.T, entries map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("creating entry %s: %v", name, err)
		}
		w.Write([]byte(content))
	}
	zw.Close()
	return buf.Bytes()
}

func TestDetectFromReader(t *testing.T) {
	t.Run("hwpx by mimetype", func(t *testing.T) {
		data := buildZip(t, map[string]string{
			"mimetype": "application/hwp+zip",
		})
		got, err := DetectFromReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			t.Fatalf("DetectFromReader: %v", err)
		}
		if got != HWPX {
			t.Errorf("got %v, want HWPX", got)
		}
	})

	t.Run("hwpx by package descriptor", func(t *testing.T) {
		data := buildZip(t, map[string]string{
			"Contents/content.hpf": "<package/>",
		})
		got, err := DetectFromReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			t.Fatalf("DetectFromReader: %v", err)
		}
		if got != HWPX {
			t.Errorf("got %v, want HWPX", got)
		}
	})

	t.Run("foreign zip", func(t *testing.T) {
		data := buildZip(t, map[string]string{
			"word/document.xml": "<w:document/>",
		})
		got, err := DetectFromReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			t.Fatalf("DetectFromReader: %v", err)
		}
		if got != Unknown {
			t.Errorf("got %v, want Unknown", got)
		}
	})

	t.Run("pdf", func(t *testing.T) {
		data := []byte("%PDF-1.4 content")
		got, err := DetectFromReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			t.Fatalf("DetectFromReader: %v", err)
		}
		if got != PDF {
			t.Errorf("got %v, want PDF", got)
		}
	})
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"simple", "document.hwpx", false},
		{"nested", "dir/sub/document.hwpx", false},
		{"absolute", "/tmp/document.hwpx", false},
		{"empty", "", true},
		{"traversal", "../../etc/passwd", true},
		{"invalid chars", "doc<1>.hwpx", true},
		{"pipe", "doc|x.hwpx", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	for _, f := range []string{"HWPX", "hwpx", "HWP", "pdf", "TEXT", "html", "hwt"} {
		if err := ValidateFormat(f); err != nil {
			t.Errorf("ValidateFormat(%q) = %v, want nil", f, err)
		}
	}
	for _, f := range []string{"DOCX", "odt", ""} {
		if err := ValidateFormat(f); err == nil {
			t.Errorf("ValidateFormat(%q) should fail", f)
		}
	}
}

func TestValidatePosition(t *testing.T) {
	for _, p := range []string{"doc_begin", "doc_end", "next_para", "prev_para", "line_begin", "UP"} {
		if err := ValidatePosition(p); err != nil {
			t.Errorf("ValidatePosition(%q) = %v, want nil", p, err)
		}
	}
	if err := ValidatePosition("middle"); err == nil {
		t.Error("ValidatePosition(middle) should fail")
	}
}

func TestValidateAlignment(t *testing.T) {
	for _, a := range []string{"left", "center", "right", "justify", "distribute", "Left"} {
		if err := ValidateAlignment(a); err != nil {
			t.Errorf("ValidateAlignment(%q) = %v, want nil", a, err)
		}
	}
	if err := ValidateAlignment("both"); err == nil {
		t.Error("ValidateAlignment(both) should fail")
	}
}

func TestValidateTableDimensions(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
		wantErr    bool
	}{
		{"minimal", 1, 1, false},
		{"typical", 3, 4, false},
		{"max", 1000, 100, false},
		{"zero rows", 0, 3, true},
		{"zero cols", 3, 0, true},
		{"negative", -1, 2, true},
		{"too many rows", 1001, 1, true},
		{"too many cols", 1, 101, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTableDimensions(tt.rows, tt.cols)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTableDimensions(%d, %d) error = %v, wantErr %v",
					tt.rows, tt.cols, err, tt.wantErr)
			}
		})
	}

	if err := ValidateTableDimensions(0, 3); err == nil || !strings.Contains(err.Error(), "rows") {
		t.Error("zero-row error should mention rows")
	}
}
