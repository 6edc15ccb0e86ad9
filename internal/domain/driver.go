package domain

// Driver - водитель автопарка. Учётные данные и управление аккаунтами
// живут во внешнем сервисе, здесь только read-side для диспетчерской.
type Driver struct {
	ID            int64  `json:"id" db:"id"`
	Username      string `json:"username" db:"username"`
	FullName      string `json:"full_name" db:"full_name"`
	LicenseNo     string `json:"license_no,omitempty" db:"license_no"`
	PlateNo       string `json:"plate_no,omitempty" db:"plate_no"`
	Phone         string `json:"phone,omitempty" db:"phone"`
	ShiftSchedule string `json:"shift_schedule,omitempty" db:"shift_schedule"`
	Active        bool   `json:"active" db:"active"`
}
