package model

// ImageSource indicates how an image was acquired.
type ImageSource string

// Image source constants.
const (
	SourceFile   ImageSource = "file"
	SourceCamera ImageSource = "camera"
)

// Image is a captured photo handed from capture to classification. It is
// only held for the duration of one analysis.
type Image struct {
	Name   string
	Format string
	Source ImageSource
	Data   []byte
	Width  int
	Height int
}

// IsEmpty reports whether the image carries no data.
func (i Image) IsEmpty() bool {
	return len(i.Data) == 0
}

// MIMEType returns the MIME type for the decoded format.
func (i Image) MIMEType() string {
	switch i.Format {
	case "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	case "bmp":
		return "image/bmp"
	case "tiff":
		return "image/tiff"
	default:
		return "application/octet-stream"
	}
}
