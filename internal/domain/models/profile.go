package models

// DriverProfile is the basic profile document kept by the profile service.
type DriverProfile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	FullName  string `json:"fullName"`
	DriverID  string `json:"driverId"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// DriverPhoto holds a base64 data URL.
type DriverPhoto struct {
	Photo      string `json:"photo"`
	DriverID   string `json:"driverId"`
	UploadedAt string `json:"uploadedAt"`
}

type PersonalInfo struct {
	FullName         string `json:"fullName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	DOB              string `json:"dob,omitempty"`
	Address          string `json:"address,omitempty"`
	EmergencyContact string `json:"emergencyContact,omitempty"`
}

type VehicleInfo struct {
	Make         string `json:"make"`
	LicensePlate string `json:"licensePlate"`
	Color        string `json:"color"`
	Year         string `json:"year"`
	Capacity     string `json:"capacity"`
	VIN          string `json:"vin,omitempty"`
}

// FullProfile is the extended profile document (personal, vehicle, bio).
type FullProfile struct {
	PersonalInfo *PersonalInfo `json:"personalInfo"`
	VehicleInfo  *VehicleInfo  `json:"vehicleInfo"`
	Bio          string        `json:"bio"`
	DriverID     string        `json:"driverId"`
	UpdatedAt    string        `json:"updatedAt,omitempty"`
}

// DriverAccount is the profile the driver edits in the app ("driverProfile" key).
type DriverAccount struct {
	DriverID  string `json:"driverId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Photo     string `json:"photo,omitempty"`
	Bio       string `json:"bio,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// DriverAccountUpdate supports PATCH-style updates via key presence.
type DriverAccountUpdate struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Photo     *string `json:"photo"`
	Bio       *string `json:"bio"`
}
