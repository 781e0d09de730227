package store

import "context"

// RefreshAccounts rebuilds the account table from the backend: the account
// list, then each account's assets, then each asset's address. Addresses
// already known are reused without another fetch; balances are carried
// over from the previous table and not fetched here. The fetch sequence is
// deliberately sequential to bound backend load. The table is replaced
// wholesale on success and left untouched on any failure.
func (s *Store) RefreshAccounts(ctx context.Context) error {
	client, deviceID, err := s.requireClient()
	if err != nil {
		return err
	}

	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	previous := s.State().Accounts

	allAccounts, err := client.GetAccounts(ctx, deviceID)
	if err != nil {
		return err
	}

	accounts := make([][]AccountAsset, 0, len(allAccounts))
	for _, account := range allAccounts {
		assets, err := client.GetAssets(ctx, deviceID, account.AccountID)
		if err != nil {
			return err
		}

		row := make([]AccountAsset, 0, len(assets))
		for _, asset := range assets {
			entry := AccountAsset{Asset: asset}
			if prev := findAccountAsset(previous, account.AccountID, asset.ID); prev != nil {
				entry.Address = prev.Address
				entry.Balance = prev.Balance
			}
			if entry.Address == nil {
				address, err := client.GetAddress(ctx, deviceID, account.AccountID, asset.ID)
				if err != nil {
					return err
				}
				entry.Address = &address
			}
			row = append(row, entry)
		}
		accounts = append(accounts, row)
	}

	s.update(func(st *State) {
		st.Accounts = accounts
	})
	return nil
}

// RefreshBalances re-fetches the balance of every asset already in the
// table, keeping the table structure and any cached addresses. Accounts
// and assets themselves are not re-fetched.
func (s *Store) RefreshBalances(ctx context.Context) error {
	client, deviceID, err := s.requireClient()
	if err != nil {
		return err
	}

	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	previous := s.State().Accounts

	accounts := make([][]AccountAsset, 0, len(previous))
	for accountID, row := range previous {
		refreshed := make([]AccountAsset, 0, len(row))
		for _, entry := range row {
			balance, err := client.GetBalance(ctx, deviceID, accountID, entry.Asset.ID)
			if err != nil {
				return err
			}
			refreshed = append(refreshed, AccountAsset{
				Asset:   entry.Asset,
				Balance: &balance,
				Address: entry.Address,
			})
		}
		accounts = append(accounts, refreshed)
	}

	s.update(func(st *State) {
		st.Accounts = accounts
	})
	return nil
}

// AddAsset enables an asset in an account on the backend. The local table
// is not modified; the asset shows up on the next RefreshAccounts.
func (s *Store) AddAsset(ctx context.Context, accountID int, assetID string) error {
	client, deviceID, err := s.requireClient()
	if err != nil {
		return err
	}
	return client.AddAsset(ctx, deviceID, accountID, assetID)
}

// findAccountAsset looks up the previous entry for (accountID, assetID).
// The table is indexed by account id.
func findAccountAsset(accounts [][]AccountAsset, accountID int, assetID string) *AccountAsset {
	if accountID < 0 || accountID >= len(accounts) {
		return nil
	}
	for i := range accounts[accountID] {
		if accounts[accountID][i].Asset.ID == assetID {
			return &accounts[accountID][i]
		}
	}
	return nil
}
