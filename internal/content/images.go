package content

import (
	"slices"
	"strconv"
	"strings"
)

// Image names shared by several pages.
const (
	ImageTitle      = "florian-technologies-title.jpg"
	ImageBackground = "body-background.jpg"
)

// ImageSet is the registry of servable site images and the widths they may
// be resized to.
type ImageSet struct {
	Names  []string
	Widths []int
}

// DefaultWidth is used when a caller does not ask for a specific size.
const DefaultWidth = 1200

// Has reports whether name is a registered image.
func (s ImageSet) Has(name string) bool {
	return slices.Contains(s.Names, name)
}

// AllowsWidth reports whether w is one of the configured widths.
func (s ImageSet) AllowsWidth(w int) bool {
	return slices.Contains(s.Widths, w)
}

// Src is the URL of name resized to width w.
func (s ImageSet) Src(name string, w int) string {
	return "/images/" + name + "?w=" + strconv.Itoa(w)
}

// SrcSet is a srcset attribute listing the device widths up to max.
func (s ImageSet) SrcSet(name string, max int) string {
	var parts []string
	for _, w := range deviceSizes {
		if w > max {
			break
		}
		parts = append(parts, s.Src(name, w)+" "+strconv.Itoa(w)+"w")
	}
	return strings.Join(parts, ", ")
}

var (
	deviceSizes = []int{640, 750, 828, 1080, 1200, 1920, 2048, 3840}
	imageSizes  = []int{16, 32, 48, 64, 96, 128, 256, 384}
)

func imageSet() ImageSet {
	widths := make([]int, 0, len(deviceSizes)+len(imageSizes))
	widths = append(widths, deviceSizes...)
	widths = append(widths, imageSizes...)

	return ImageSet{
		Names: []string{
			ImageTitle,
			ImageBackground,
			"medical_innovations.png",
			"medical_innovations_1.png",
			"it_services.png",
			"healthcare_products.png",
			"software_development_team.png",
			"domain_expertise.png",
			"client_first_approach.png",
			"it_consultants_discussion.png",
			"get_in_touch.png",
		},
		Widths: widths,
	}
}
