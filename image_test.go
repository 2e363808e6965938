package asciify_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	. "github.com/kevin-cantwell/asciify"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Decode", func() {
	It("decodes a png", func() {
		var buf bytes.Buffer
		Expect(png.Encode(&buf, uniform(3, 2, color.White))).To(Succeed())
		img, err := Decode(&buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(img.Bounds()).To(Equal(image.Rect(0, 0, 3, 2)))
	})

	It("reports unrecognized data", func() {
		_, err := Decode(strings.NewReader("not an image"))
		Expect(err).To(BeAssignableToTypeOf(&DecodeError{}))
		Expect(errors.Is(err, image.ErrFormat)).To(BeTrue())
	})
})

var _ = Describe("Open", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "asciify")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(dir)
	})

	It("reads an image from disk", func() {
		path := filepath.Join(dir, "img.png")
		f, err := os.Create(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(png.Encode(f, uniform(5, 5, color.Black))).To(Succeed())
		Expect(f.Close()).To(Succeed())

		img, err := Open(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(img.Bounds().Dx()).To(Equal(5))
	})

	It("names the missing file", func() {
		path := filepath.Join(dir, "missing.png")
		_, err := Open(path)
		Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring(path))
	})
})

var _ = Describe("Extrema", func() {
	It("finds the darkest and brightest samples", func() {
		lo, hi := Extrema(grey([]uint8{40, 7, 99}, []uint8{12, 230, 8}))
		Expect(lo).To(Equal(uint8(7)))
		Expect(hi).To(Equal(uint8(230)))
	})

	It("only looks inside the buffer's bounds", func() {
		buf := grey([]uint8{0, 50, 60, 255})
		lo, hi := Extrema(buf.SubImage(image.Rect(1, 0, 3, 1)).(*image.Gray))
		Expect(lo).To(Equal(uint8(50)))
		Expect(hi).To(Equal(uint8(60)))
	})

	It("reports zeros for an empty buffer", func() {
		lo, hi := Extrema(image.NewGray(image.Rect(0, 0, 0, 0)))
		Expect(lo).To(BeZero())
		Expect(hi).To(BeZero())
	})
})

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

var _ = Describe("Encoder", func() {
	It("terminates every row", func() {
		var buf bytes.Buffer
		Expect(NewEncoder(&buf, "\r\n").Encode([]string{"ab", "⣿"})).To(Succeed())
		Expect(buf.String()).To(Equal("ab\r\n⣿\r\n"))
	})

	It("defaults to line feeds", func() {
		var buf bytes.Buffer
		Expect(NewEncoder(&buf, "").Encode([]string{"a", "b"})).To(Succeed())
		Expect(buf.String()).To(Equal("a\nb\n"))
	})

	It("returns write errors", func() {
		err := NewEncoder(failingWriter{}, "\n").Encode([]string{"a"})
		Expect(err).To(MatchError("disk full"))
	})
})
