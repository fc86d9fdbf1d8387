package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/naggie/turbojigsaw/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// LabelInfo is the data encoded into each part label's QR code.
type LabelInfo struct {
	PartName string  `json:"part"`
	Width    float64 `json:"width_mm"`
	Height   float64 `json:"height_mm"`
	BedIndex int     `json:"bed"`
	BedName  string  `json:"bed_name"`
	Rotated  bool    `json:"rotated"`
	X        float64 `json:"x_mm"`
	Y        float64 `json:"y_mm"`
}

// Label layout constants for Avery 5160-compatible sheets
// (3 columns x 10 rows on US Letter).
const (
	labelPageWidth  = 215.9
	labelMarginTop  = 12.7
	labelMarginLeft = 4.8
	labelWidth      = 66.7
	labelHeight     = 25.4
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0
	labelPadding    = 2.0
)

// WriteLabels generates a PDF of QR-coded labels, one per placed part.
// Each label carries the part name, its padded dimensions, and a QR code
// encoding the full placement record as JSON, so a printed segment can
// be matched back to its bed and position.
func WriteLabels(path string, result model.PackResult) error {
	labels := CollectLabelInfos(result)
	if len(labels) == 0 {
		return fmt.Errorf("no placed parts to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("render label for %q: %w", label.PartName, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// CollectLabelInfos flattens a pack result into per-placement label data.
func CollectLabelInfos(result model.PackResult) []LabelInfo {
	var labels []LabelInfo
	for bedIdx, bed := range result.Beds {
		for _, p := range bed.Placements {
			labels = append(labels, LabelInfo{
				PartName: p.PartName,
				Width:    p.Width,
				Height:   p.Height,
				BedIndex: bedIdx + 1,
				BedName:  bed.Name,
				Rotated:  p.Rotated,
				X:        p.X,
				Y:        p.Y,
			})
		}
	}
	return labels
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	// Light border as a cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%s_%d_%d", info.PartName, info.BedIndex, int(info.X*1000+info.Y))
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	partName := info.PartName
	if pdf.GetStringWidth(partName) > textW {
		for len(partName) > 0 && pdf.GetStringWidth(partName+"...") > textW {
			partName = partName[:len(partName)-1]
		}
		partName += "..."
	}
	pdf.CellFormat(textW, 4.5, partName, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	dims := fmt.Sprintf("%.0f x %.0f mm", info.Width, info.Height)
	pdf.CellFormat(textW, 3.5, dims, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	bedInfo := fmt.Sprintf("Bed %d @ (%.0f, %.0f)", info.BedIndex, info.X, info.Y)
	pdf.CellFormat(textW, 3, bedInfo, "", 1, "L", false, 0, "")

	if info.Rotated {
		pdf.SetXY(textX, y+labelPadding+12.5)
		pdf.SetFont("Helvetica", "I", 6)
		pdf.SetTextColor(150, 100, 0)
		pdf.CellFormat(textW, 3, "Rotated 90\xb0", "", 0, "L", false, 0, "")
	}

	pdf.SetTextColor(0, 0, 0)

	return nil
}
