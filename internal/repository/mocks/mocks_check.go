package mocks

import "github.com/fintrackhq/fintrack/internal/repository"

// Ensure mocks implement the repository interfaces
var (
	_ repository.UserRepository        = (*MockUserRepository)(nil)
	_ repository.AccountRepository     = (*MockAccountRepository)(nil)
	_ repository.CardRepository        = (*MockCardRepository)(nil)
	_ repository.TransactionRepository = (*MockTransactionRepository)(nil)
	_ repository.BlocklistRepository   = (*MockBlocklistRepository)(nil)
	_ repository.AdminRepository       = (*MockAdminRepository)(nil)
	_ repository.LogRepository         = (*MockLogRepository)(nil)
)
