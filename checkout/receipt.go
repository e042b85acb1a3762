package checkout

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// DownloadReceipt renders an order as a PDF with a QR code of the order
// number for store pickup.
func (h *Handler) DownloadReceipt(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	order, ok := h.Orders.Get(ps.ByName("orderId"))
	if !ok {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	qrPNG, err := qrcode.Encode(order.OrderID, qrcode.Medium, 128)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	// Create PDF
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Order Receipt")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Order: %s", order.OrderID))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Name: %s %s", order.Shipping.FirstName, order.Shipping.LastName))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Placed: %s", order.CreatedAt.Format("02 Jan 2006 15:04")))
	pdf.Ln(12)

	for _, item := range order.Items {
		pdf.Cell(0, 7, fmt.Sprintf("%d x %s - S/ %.2f", item.Quantity, item.Name, item.UnitPrice*float64(item.Quantity)))
		pdf.Ln(7)
	}
	pdf.Ln(5)

	pdf.Cell(0, 7, fmt.Sprintf("Subtotal: S/ %.2f", order.Subtotal))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Shipping: S/ %.2f", order.Delivery))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Tax: S/ %.2f", order.Tax))
	pdf.Ln(7)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total: S/ %.2f", order.Total))

	// Add QR image
	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=receipt-"+order.OrderID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
