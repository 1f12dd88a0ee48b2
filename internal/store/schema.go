package store

// schema creates every table. Dates are stored as YYYY-MM-DD text so that
// ordering by date is a string comparison.
const schema = `
CREATE TABLE IF NOT EXISTS accounts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    code INTEGER NOT NULL UNIQUE CHECK (code > 0),
    name TEXT NOT NULL,
    classification TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS journal_entries (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    date TEXT NOT NULL,
    debit_account_id INTEGER NOT NULL REFERENCES accounts(id),
    debit_amount INTEGER NOT NULL CHECK (debit_amount > 0),
    credit_account_id INTEGER NOT NULL REFERENCES accounts(id),
    credit_amount INTEGER NOT NULL CHECK (credit_amount > 0),
    description TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL,
    CHECK (debit_amount = credit_amount),
    CHECK (debit_account_id <> credit_account_id)
);

CREATE INDEX IF NOT EXISTS idx_journal_entries_date
    ON journal_entries(date, id);

CREATE TABLE IF NOT EXISTS fixed_assets (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    acquisition_date TEXT NOT NULL,
    acquisition_cost INTEGER NOT NULL,
    useful_life INTEGER NOT NULL,
    depreciation_method TEXT NOT NULL,
    depreciation_rate INTEGER NOT NULL,  -- scaled by 10000
    accumulated_dep INTEGER NOT NULL DEFAULT 0,
    memo TEXT NOT NULL DEFAULT '',
    is_active INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS rent_details (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    payee_address TEXT NOT NULL DEFAULT '',
    payee_name TEXT NOT NULL,
    rent_type TEXT NOT NULL DEFAULT '',
    monthly_rent INTEGER NOT NULL,
    annual_total INTEGER NOT NULL,
    business_ratio INTEGER NOT NULL CHECK (business_ratio BETWEEN 1 AND 100),
    memo TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS loss_carryforward (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    loss_year INTEGER NOT NULL,
    loss_amount INTEGER NOT NULL CHECK (loss_amount > 0),
    used_year_1 INTEGER NOT NULL DEFAULT 0,
    used_year_2 INTEGER NOT NULL DEFAULT 0,
    used_year_3 INTEGER NOT NULL DEFAULT 0,
    memo TEXT NOT NULL DEFAULT ''
);
`
