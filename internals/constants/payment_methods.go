package constants

// Metode pembayaran yang didukung.
const (
	MethodCash         = "cash"
	MethodUPI          = "upi"
	MethodBankTransfer = "bank_transfer"
	MethodCheque       = "cheque"
	MethodFawran       = "fawran"
)

var PaymentMethods = []string{
	MethodCash, MethodUPI, MethodBankTransfer, MethodCheque, MethodFawran,
}

// Status siswa.
const (
	StudentActive   = "active"
	StudentInactive = "inactive"
)
