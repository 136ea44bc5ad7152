package models

import (
	"github.com/akylbek/payment-system/status-engine/internal/apperrors"
)

// PaymentMethod is the coarse payment method family used for routing and
// reporting.
type PaymentMethod string

const (
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodCardRedirect PaymentMethod = "card_redirect"
	PaymentMethodPayLater     PaymentMethod = "pay_later"
	PaymentMethodWallet       PaymentMethod = "wallet"
	PaymentMethodBankRedirect PaymentMethod = "bank_redirect"
	PaymentMethodBankDebit    PaymentMethod = "bank_debit"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCrypto       PaymentMethod = "crypto"
	PaymentMethodReward       PaymentMethod = "reward"
	PaymentMethodUpi          PaymentMethod = "upi"
	PaymentMethodVoucher      PaymentMethod = "voucher"
	PaymentMethodGiftCard     PaymentMethod = "gift_card"
)

// AllPaymentMethods lists every defined payment method family.
var AllPaymentMethods = []PaymentMethod{
	PaymentMethodCard,
	PaymentMethodCardRedirect,
	PaymentMethodPayLater,
	PaymentMethodWallet,
	PaymentMethodBankRedirect,
	PaymentMethodBankDebit,
	PaymentMethodBankTransfer,
	PaymentMethodCrypto,
	PaymentMethodReward,
	PaymentMethodUpi,
	PaymentMethodVoucher,
	PaymentMethodGiftCard,
}

// PaymentMethodType is the concrete instrument within a payment method
// family.
type PaymentMethodType string

const (
	PaymentMethodTypeCredit           PaymentMethodType = "credit"
	PaymentMethodTypeDebit            PaymentMethodType = "debit"
	PaymentMethodTypeKnet             PaymentMethodType = "knet"
	PaymentMethodTypeBenefit          PaymentMethodType = "benefit"
	PaymentMethodTypeMomoAtm          PaymentMethodType = "momo_atm"
	PaymentMethodTypeCardRedirect     PaymentMethodType = "card_redirect"
	PaymentMethodTypeKlarna           PaymentMethodType = "klarna"
	PaymentMethodTypeAffirm           PaymentMethodType = "affirm"
	PaymentMethodTypeAfterpayClearpay PaymentMethodType = "afterpay_clearpay"
	PaymentMethodTypeAlma             PaymentMethodType = "alma"
	PaymentMethodTypeAtome            PaymentMethodType = "atome"
	PaymentMethodTypeApplePay         PaymentMethodType = "apple_pay"
	PaymentMethodTypeGooglePay        PaymentMethodType = "google_pay"
	PaymentMethodTypePaypal           PaymentMethodType = "paypal"
	PaymentMethodTypeAliPay           PaymentMethodType = "ali_pay"
	PaymentMethodTypeWeChatPay        PaymentMethodType = "we_chat_pay"
	PaymentMethodTypeMobilePay        PaymentMethodType = "mobile_pay"
	PaymentMethodTypeSamsungPay       PaymentMethodType = "samsung_pay"
	PaymentMethodTypeTwint            PaymentMethodType = "twint"
	PaymentMethodTypeVipps            PaymentMethodType = "vipps"
	PaymentMethodTypeSwish            PaymentMethodType = "swish"
	PaymentMethodTypeCashapp          PaymentMethodType = "cashapp"
	PaymentMethodTypeGiropay          PaymentMethodType = "giropay"
	PaymentMethodTypeIdeal            PaymentMethodType = "ideal"
	PaymentMethodTypeSofort           PaymentMethodType = "sofort"
	PaymentMethodTypeEps              PaymentMethodType = "eps"
	PaymentMethodTypeBancontactCard   PaymentMethodType = "bancontact_card"
	PaymentMethodTypeBlik             PaymentMethodType = "blik"
	PaymentMethodTypePrzelewy24       PaymentMethodType = "przelewy24"
	PaymentMethodTypeTrustly          PaymentMethodType = "trustly"
	PaymentMethodTypeOpenBankingUk    PaymentMethodType = "open_banking_uk"
	PaymentMethodTypeAch              PaymentMethodType = "ach"
	PaymentMethodTypeBacs             PaymentMethodType = "bacs"
	PaymentMethodTypeBecs             PaymentMethodType = "becs"
	PaymentMethodTypeSepa             PaymentMethodType = "sepa"
	PaymentMethodTypePix              PaymentMethodType = "pix"
	PaymentMethodTypeMultibanco       PaymentMethodType = "multibanco"
	PaymentMethodTypeCryptoCurrency   PaymentMethodType = "crypto_currency"
	PaymentMethodTypeClassicReward    PaymentMethodType = "classic"
	PaymentMethodTypeEvoucher         PaymentMethodType = "evoucher"
	PaymentMethodTypeUpiCollect       PaymentMethodType = "upi_collect"
	PaymentMethodTypeUpiIntent        PaymentMethodType = "upi_intent"
	PaymentMethodTypeBoleto           PaymentMethodType = "boleto"
	PaymentMethodTypeOxxo             PaymentMethodType = "oxxo"
	PaymentMethodTypeGivex            PaymentMethodType = "givex"
	PaymentMethodTypePaySafeCard      PaymentMethodType = "pay_safe_card"
)

// AllPaymentMethodTypes lists every defined concrete instrument.
var AllPaymentMethodTypes = []PaymentMethodType{
	PaymentMethodTypeCredit,
	PaymentMethodTypeDebit,
	PaymentMethodTypeKnet,
	PaymentMethodTypeBenefit,
	PaymentMethodTypeMomoAtm,
	PaymentMethodTypeCardRedirect,
	PaymentMethodTypeKlarna,
	PaymentMethodTypeAffirm,
	PaymentMethodTypeAfterpayClearpay,
	PaymentMethodTypeAlma,
	PaymentMethodTypeAtome,
	PaymentMethodTypeApplePay,
	PaymentMethodTypeGooglePay,
	PaymentMethodTypePaypal,
	PaymentMethodTypeAliPay,
	PaymentMethodTypeWeChatPay,
	PaymentMethodTypeMobilePay,
	PaymentMethodTypeSamsungPay,
	PaymentMethodTypeTwint,
	PaymentMethodTypeVipps,
	PaymentMethodTypeSwish,
	PaymentMethodTypeCashapp,
	PaymentMethodTypeGiropay,
	PaymentMethodTypeIdeal,
	PaymentMethodTypeSofort,
	PaymentMethodTypeEps,
	PaymentMethodTypeBancontactCard,
	PaymentMethodTypeBlik,
	PaymentMethodTypePrzelewy24,
	PaymentMethodTypeTrustly,
	PaymentMethodTypeOpenBankingUk,
	PaymentMethodTypeAch,
	PaymentMethodTypeBacs,
	PaymentMethodTypeBecs,
	PaymentMethodTypeSepa,
	PaymentMethodTypePix,
	PaymentMethodTypeMultibanco,
	PaymentMethodTypeCryptoCurrency,
	PaymentMethodTypeClassicReward,
	PaymentMethodTypeEvoucher,
	PaymentMethodTypeUpiCollect,
	PaymentMethodTypeUpiIntent,
	PaymentMethodTypeBoleto,
	PaymentMethodTypeOxxo,
	PaymentMethodTypeGivex,
	PaymentMethodTypePaySafeCard,
}

// ParsePaymentMethodType validates a raw payment method type string.
func ParsePaymentMethodType(value string) (PaymentMethodType, error) {
	t := PaymentMethodType(value)
	for _, known := range AllPaymentMethodTypes {
		if t == known {
			return t, nil
		}
	}
	return "", &apperrors.IncorrectValueProvided{FieldName: "payment_method_type"}
}

// Method buckets the instrument into its payment method family.
func (t PaymentMethodType) Method() PaymentMethod {
	switch t {
	case PaymentMethodTypeCredit, PaymentMethodTypeDebit:
		return PaymentMethodCard
	case PaymentMethodTypeKnet, PaymentMethodTypeBenefit,
		PaymentMethodTypeMomoAtm, PaymentMethodTypeCardRedirect:
		return PaymentMethodCardRedirect
	case PaymentMethodTypeKlarna, PaymentMethodTypeAffirm,
		PaymentMethodTypeAfterpayClearpay, PaymentMethodTypeAlma,
		PaymentMethodTypeAtome:
		return PaymentMethodPayLater
	case PaymentMethodTypeApplePay, PaymentMethodTypeGooglePay,
		PaymentMethodTypePaypal, PaymentMethodTypeAliPay,
		PaymentMethodTypeWeChatPay, PaymentMethodTypeMobilePay,
		PaymentMethodTypeSamsungPay, PaymentMethodTypeTwint,
		PaymentMethodTypeVipps, PaymentMethodTypeSwish,
		PaymentMethodTypeCashapp:
		return PaymentMethodWallet
	case PaymentMethodTypeGiropay, PaymentMethodTypeIdeal,
		PaymentMethodTypeSofort, PaymentMethodTypeEps,
		PaymentMethodTypeBancontactCard, PaymentMethodTypeBlik,
		PaymentMethodTypePrzelewy24, PaymentMethodTypeTrustly,
		PaymentMethodTypeOpenBankingUk:
		return PaymentMethodBankRedirect
	case PaymentMethodTypeAch, PaymentMethodTypeBacs,
		PaymentMethodTypeBecs, PaymentMethodTypeSepa:
		return PaymentMethodBankDebit
	case PaymentMethodTypePix, PaymentMethodTypeMultibanco:
		return PaymentMethodBankTransfer
	case PaymentMethodTypeCryptoCurrency:
		return PaymentMethodCrypto
	case PaymentMethodTypeClassicReward, PaymentMethodTypeEvoucher:
		return PaymentMethodReward
	case PaymentMethodTypeUpiCollect, PaymentMethodTypeUpiIntent:
		return PaymentMethodUpi
	case PaymentMethodTypeBoleto, PaymentMethodTypeOxxo:
		return PaymentMethodVoucher
	case PaymentMethodTypeGivex, PaymentMethodTypePaySafeCard:
		return PaymentMethodGiftCard
	}
	return PaymentMethodCard
}
