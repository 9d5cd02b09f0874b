package domain

// Format is the creative shape of an ad. It is the discriminant that selects
// which Creative variant a record carries.
type Format string

const (
	FormatImage Format = "Image"
	FormatVideo Format = "Video"
)

// Valid reports whether f is one of the known formats.
func (f Format) Valid() bool {
	return f == FormatImage || f == FormatVideo
}

// Code returns the numeric format code used by the transparency exports
// (2 for image, 3 for video, 0 otherwise).
func (f Format) Code() int {
	switch f {
	case FormatImage:
		return 2
	case FormatVideo:
		return 3
	default:
		return 0
	}
}

// Creative is the media payload of an ad. It is implemented only by
// ImageCreative and VideoCreative.
type Creative interface {
	// Format returns the format this variant belongs to.
	Format() Format
	// PreviewURL returns the best still image for the creative, or "".
	PreviewURL() string
	// Body returns the ad copy.
	Body() string

	creative()
}

// ImageCreative is the payload of an Image ad.
type ImageCreative struct {
	ImageURL  string
	Text      string
	HasIframe bool
}

func (ImageCreative) Format() Format       { return FormatImage }
func (c ImageCreative) PreviewURL() string { return c.ImageURL }
func (c ImageCreative) Body() string       { return c.Text }
func (ImageCreative) creative()            {}

// VideoCreative is the payload of a Video ad. Either URL may be empty.
type VideoCreative struct {
	VideoURL       string
	ThumbnailURL   string
	YoutubeVideoID string
	Text           string
	HasIframe      bool
}

func (VideoCreative) Format() Format       { return FormatVideo }
func (c VideoCreative) PreviewURL() string { return c.ThumbnailURL }
func (c VideoCreative) Body() string       { return c.Text }
func (VideoCreative) creative()            {}
