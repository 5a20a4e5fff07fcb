package domain

// Column header labels used by the enrichment lookup. Device-info
// documents identify columns by these header texts, never by position.
const (
	ColumnDeviceID     = "设备编号"
	ColumnDeviceName   = "设备名称"
	ColumnDeviceModel  = "型号"
	ColumnManufacturer = "厂家"
)

// DeviceInfo holds the fields recovered by an enrichment lookup.
// Empty fields were not present in the matched row.
type DeviceInfo struct {
	// Name is the device name.
	Name string

	// Model is the device model.
	Model string

	// Manufacturer is the device manufacturer.
	Manufacturer string
}

// IsEmpty returns true when no field was recovered.
func (d DeviceInfo) IsEmpty() bool {
	return d.Name == "" && d.Model == "" && d.Manufacturer == ""
}
