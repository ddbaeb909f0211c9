package payment

import "strings"

const (
	MethodCOD          = "COD"
	MethodBankTransfer = "BANK_TRANSFER"

	// E-Wallet
	MethodMoMo    = "MOMO"
	MethodZaloPay = "ZALOPAY"
	MethodVNPay   = "VNPAY"
)

// Method is one selectable payment option with its display label.
type Method struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Methods lists the supported options in display order.
func Methods() []Method {
	return []Method{
		{ID: MethodCOD, Label: "Thanh toán khi nhận hàng (COD)"},
		{ID: MethodBankTransfer, Label: "Chuyển khoản ngân hàng"},
		{ID: MethodMoMo, Label: "Ví MoMo"},
		{ID: MethodZaloPay, Label: "Ví ZaloPay"},
		{ID: MethodVNPay, Label: "VNPAY"},
	}
}

func IsValidMethod(method string) bool {
	_, ok := InstructionMap[method]
	return ok
}

var InstructionMap = map[string][]string{
	MethodCOD: {
		"Đơn hàng sẽ được giao đến địa chỉ nhận hàng",
		"Chuẩn bị số tiền mặt {{amount}} khi nhân viên giao hàng đến",
		"Kiểm tra hàng trước khi thanh toán",
		"Thanh toán trực tiếp cho nhân viên giao hàng",
		"Giữ lại biên nhận làm bằng chứng thanh toán",
	},

	MethodBankTransfer: {
		"Mở ứng dụng ngân hàng của bạn",
		"Chuyển khoản số tiền {{amount}} đến tài khoản của cửa hàng",
		"Ghi nội dung chuyển khoản: {{order_number}}",
		"Đơn hàng được xử lý sau khi cửa hàng nhận được tiền",
		"Giữ lại biên lai chuyển khoản",
	},

	MethodMoMo: {
		"Mở ứng dụng MoMo",
		"Đảm bảo số dư đủ cho khoản thanh toán {{amount}}",
		"Quét mã QR hoặc xác nhận thông báo thanh toán",
		"Nhập mã PIN MoMo để hoàn tất giao dịch",
	},

	MethodZaloPay: {
		"Mở ứng dụng ZaloPay",
		"Đảm bảo số dư đủ cho khoản thanh toán {{amount}}",
		"Xác nhận thanh toán trong ứng dụng",
		"Nhập mã PIN ZaloPay để hoàn tất giao dịch",
	},

	MethodVNPay: {
		"Chọn ngân hàng hoặc ví liên kết VNPAY",
		"Kiểm tra số tiền thanh toán {{amount}}",
		"Xác thực giao dịch bằng OTP từ ngân hàng",
		"Chờ hệ thống xác nhận thanh toán thành công",
	},
}

func GetInstructions(method string) []string {
	if steps, ok := InstructionMap[method]; ok {
		return steps
	}

	return []string{
		"Làm theo hướng dẫn thanh toán hiển thị trên trang này",
	}
}

type InstructionVars map[string]string

func InjectVariables(steps []string, vars InstructionVars) []string {
	result := make([]string, 0, len(steps))

	for _, step := range steps {
		updated := step
		for key, value := range vars {
			updated = strings.ReplaceAll(updated, "{{"+key+"}}", value)
		}
		result = append(result, updated)
	}

	return result
}
