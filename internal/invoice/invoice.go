package invoice

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"craftviet-be/internal/logger"
	"craftviet-be/internal/order"
	"craftviet-be/internal/utils"

	"go.uber.org/zap"
)

// Generator renders an order into an HTML invoice on disk. The output is a
// pure function of the order: regenerating yields the same file.
type Generator struct {
	dir         string
	shopName    string
	shopAddress string
	tmpl        *template.Template
}

func NewGenerator(dir, shopName, shopAddress string) (*Generator, error) {
	tmpl, err := template.New("invoice").Funcs(template.FuncMap{
		"vnd":     utils.FormatVND,
		"variant": utils.VariantLabel,
	}).Parse(invoiceTemplate)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	return &Generator{
		dir:         dir,
		shopName:    shopName,
		shopAddress: shopAddress,
		tmpl:        tmpl,
	}, nil
}

type invoiceData struct {
	ShopName    string
	ShopAddress string
	Order       *order.Order
}

// Generate writes the invoice for o and returns the file path. The file is
// named after the order number, so repeated calls overwrite in place.
func (g *Generator) Generate(ctx context.Context, o *order.Order) (string, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "Invoice"),
		zap.String("order_number", o.OrderNumber),
	)

	path := filepath.Join(g.dir, fmt.Sprintf("%s.html", o.OrderNumber))

	f, err := os.Create(path)
	if err != nil {
		log.Error("failed to create invoice file", zap.Error(err))
		return "", err
	}
	defer f.Close()

	if err := g.tmpl.Execute(f, invoiceData{
		ShopName:    g.shopName,
		ShopAddress: g.shopAddress,
		Order:       o,
	}); err != nil {
		log.Error("failed to render invoice", zap.Error(err))
		return "", err
	}

	log.Info("invoice generated", zap.String("path", path))
	return path, nil
}

const invoiceTemplate = `<!DOCTYPE html>
<html lang="vi">
<head>
<meta charset="utf-8">
<title>Hóa đơn {{.Order.OrderNumber}}</title>
<style>
body { font-family: sans-serif; max-width: 720px; margin: 2rem auto; color: #222; }
table { width: 100%; border-collapse: collapse; margin: 1rem 0; }
th, td { border-bottom: 1px solid #ddd; padding: 8px; text-align: left; }
td.num, th.num { text-align: right; }
.totals td { border: none; }
.grand { font-weight: bold; font-size: 1.1em; }
</style>
</head>
<body>
<h1>{{.ShopName}}</h1>
<p>{{.ShopAddress}}</p>
<hr>
<h2>Hóa đơn {{.Order.OrderNumber}}</h2>
<p>Ngày đặt: {{.Order.CreatedAt.Format "02/01/2006 15:04"}}</p>
<p>
Người nhận: {{.Order.ShippingAddress.FullName}} — {{.Order.ShippingAddress.Phone}}<br>
Địa chỉ: {{.Order.ShippingAddress.Street}}, {{.Order.ShippingAddress.City}}, {{.Order.ShippingAddress.Province}}
</p>
<p>Vận chuyển: {{.Order.ShippingMethodName}} · Thanh toán: {{.Order.PaymentMethod}}</p>
<table>
<tr><th>Sản phẩm</th><th class="num">Đơn giá</th><th class="num">SL</th><th class="num">Thành tiền</th></tr>
{{range .Order.Items}}
<tr>
<td>{{.Name}}{{with variant .SelectedColor .SelectedSize}} ({{.}}){{end}}</td>
<td class="num">{{vnd .UnitPrice}}</td>
<td class="num">{{.Quantity}}</td>
<td class="num">{{vnd .LineSubtotal}}</td>
</tr>
{{end}}
</table>
<table class="totals">
<tr><td>Tạm tính</td><td class="num">{{vnd .Order.Subtotal}}</td></tr>
<tr><td>Phí vận chuyển</td><td class="num">{{vnd .Order.ShippingCost}}</td></tr>
{{if gt .Order.Discount 0}}
<tr><td>Giảm giá{{with .Order.PromoCode}} ({{.}}){{end}}</td><td class="num">−{{vnd .Order.Discount}}</td></tr>
{{end}}
<tr class="grand"><td>Tổng cộng</td><td class="num">{{vnd .Order.Total}}</td></tr>
</table>
</body>
</html>
`
