package service

import "errors"

var (
	ErrForbidden          = errors.New("access denied")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidUser        = errors.New("invalid user data")

	ErrSpmNotFound       = errors.New("spm not found")
	ErrSpmLocked         = errors.New("accepted spm can no longer be changed")
	ErrEmptyRincian      = errors.New("spm must have at least one rincian")
	ErrDuplicateNomorSpm = errors.New("nomor spm already registered")
	ErrInvalidStatus     = errors.New("invalid spm status")
	ErrInvalidSpm        = errors.New("invalid spm data")

	ErrRincianNotFound  = errors.New("rincian not found")
	ErrKodeAkunNotFound = errors.New("kode akun not found")
	ErrFlagNotFound     = errors.New("flag not found")
	ErrDuplicateFlag    = errors.New("flag already exists for this kode akun")
	ErrInvalidFlag      = errors.New("invalid flag data")

	ErrSatkerRequired = errors.New("satker must be specified")
	ErrInvalidYear    = errors.New("invalid tahun anggaran")
	ErrInvalidReport  = errors.New("invalid report data")
	ErrJobNotFound    = errors.New("reconciliation job not found")
	ErrJobsDisabled   = errors.New("background reconciliation is not available")
)
