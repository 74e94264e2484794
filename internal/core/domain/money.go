package domain

import (
	"fmt"

	"github.com/Rhymond/go-money"
)

// FormatBRL renders cents as Brazilian reais, e.g. 700000 -> "R$7.000,00".
func FormatBRL(cents int64) string {
	return money.New(cents, money.BRL).Display()
}

func DescribeOpeningDeposit(amount int64) string {
	return "Opening deposit of " + FormatBRL(amount)
}

func DescribeDeposit(amount int64) string {
	return "Deposit of " + FormatBRL(amount)
}

func DescribeWithdrawal(amount int64) string {
	return "Withdrawal of " + FormatBRL(amount)
}

func DescribeTransferSent(amount int64, targetPix, note string) string {
	return withNote(fmt.Sprintf("PIX transfer of %s sent to %s", FormatBRL(amount), targetPix), note)
}

func DescribeTransferReceived(amount int64, sourcePix, note string) string {
	return withNote(fmt.Sprintf("PIX transfer of %s received from %s", FormatBRL(amount), sourcePix), note)
}

func DescribeInvestmentOpening(inv Investment) string {
	return fmt.Sprintf("Application of %s in investment %d (%s)", FormatBRL(inv.InitialFunds), inv.ID, inv.Name)
}

func DescribeInitialInvestment(amount int64) string {
	return "Initial investment of " + FormatBRL(amount)
}

func DescribeContribution(amount int64) string {
	return "Contribution of " + FormatBRL(amount)
}

func DescribeRedemption(amount int64) string {
	return "Redemption of " + FormatBRL(amount)
}

func DescribeYield(amount, taxRate int64) string {
	return fmt.Sprintf("Yield of %s (%d%%)", FormatBRL(amount), taxRate)
}

func withNote(s, note string) string {
	if note == "" {
		return s
	}
	return s + ": " + note
}
