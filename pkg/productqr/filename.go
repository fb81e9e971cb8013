package productqr

import "regexp"

var whitespaceRun = regexp.MustCompile(`[\s\p{Z}\x{FEFF}]+`)

// Filename is the download name for a product code:
// qr-<variety with whitespace runs replaced by '-'>-<productId>.png
func Filename(data ProductQRData) string {
	return "qr-" + whitespaceRun.ReplaceAllString(data.Variety, "-") + "-" + data.ProductID + ".png"
}
