package memory

import (
	"context"

	"github.com/ironboundtech/TheDrinkDistrict/internal/domain"
	"github.com/shopspring/decimal"
)

// Debit списывает amount, если баланс активного пользователя не меньше amount.
// Проверка и запись выполняются в одной критической секции.
func (s *Store) Debit(ctx context.Context, userID string, amount decimal.Decimal, kind domain.TransactionKind, ref string) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := s.write(ctx, func(st *state) error {
		u, ok := st.users[userID]
		if !ok || !u.IsActive {
			return domain.ErrUserNotFound
		}
		if u.WalletBalance.LessThan(amount) {
			return domain.ErrInsufficientFunds
		}
		u.WalletBalance = u.WalletBalance.Sub(amount)
		balance = u.WalletBalance
		s.journal(st, userID, amount.Neg(), kind, ref, balance)
		return nil
	})
	return balance, err
}

// Credit зачисляет amount без проверки баланса
func (s *Store) Credit(ctx context.Context, userID string, amount decimal.Decimal, kind domain.TransactionKind, ref string) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := s.write(ctx, func(st *state) error {
		u, ok := st.users[userID]
		if !ok {
			return domain.ErrUserNotFound
		}
		u.WalletBalance = u.WalletBalance.Add(amount)
		balance = u.WalletBalance
		s.journal(st, userID, amount, kind, ref, balance)
		return nil
	})
	return balance, err
}

func (s *Store) journal(st *state, userID string, amount decimal.Decimal, kind domain.TransactionKind, ref string, balance decimal.Decimal) {
	st.nextTxID++
	st.transactions = append(st.transactions, &domain.WalletTransaction{
		ID:           st.nextTxID,
		UserID:       userID,
		Amount:       amount,
		Kind:         kind,
		Reference:    ref,
		BalanceAfter: balance,
		CreatedAt:    s.now(),
	})
}

// GetBalance возвращает текущий баланс
func (s *Store) GetBalance(_ context.Context, userID string) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := s.read(func(st *state) error {
		u, ok := st.users[userID]
		if !ok {
			return domain.ErrUserNotFound
		}
		balance = u.WalletBalance
		return nil
	})
	return balance, err
}

// GetTransactions возвращает журнал пользователя, новые записи первыми
func (s *Store) GetTransactions(_ context.Context, userID string) ([]*domain.WalletTransaction, error) {
	var result []*domain.WalletTransaction
	err := s.read(func(st *state) error {
		for i := len(st.transactions) - 1; i >= 0; i-- {
			if t := st.transactions[i]; t.UserID == userID {
				tc := *t
				result = append(result, &tc)
			}
		}
		return nil
	})
	return result, err
}
