// Package tags names the known RSCP tags. The constants are the request
// forms, the response form of any tag is derived with its Response method.
// The catalogue behind Info and Name is advisory, controllers answer unknown
// tags with an error item, never with silence.
package tags

import (
	"fmt"

	"github.com/hausenergie/librscp-go/base"
)

// Device subsystems, the high byte of every tag.
const (
	NamespaceRSCP    base.Namespace = 0x00
	NamespaceEMS     base.Namespace = 0x01
	NamespacePVI     base.Namespace = 0x02
	NamespaceBAT     base.Namespace = 0x03
	NamespaceDCDC    base.Namespace = 0x04
	NamespacePM      base.Namespace = 0x05
	NamespaceDB      base.Namespace = 0x06
	NamespaceSRV     base.Namespace = 0x08
	NamespaceHA      base.Namespace = 0x09
	NamespaceInfo    base.Namespace = 0x0a
	NamespaceEP      base.Namespace = 0x0b
	NamespaceSYS     base.Namespace = 0x0c
	NamespaceUM      base.Namespace = 0x0d
	NamespaceWB      base.Namespace = 0x0e
	NamespacePTDB    base.Namespace = 0x0f
	NamespaceLED     base.Namespace = 0x10
	NamespaceDiag    base.Namespace = 0x11
	NamespaceSGR     base.Namespace = 0x12
	NamespaceMBS     base.Namespace = 0x13
	NamespaceEH      base.Namespace = 0x14
	NamespaceUPnPC   base.Namespace = 0x15
	NamespaceKNX     base.Namespace = 0x16
	NamespaceEMSHB   base.Namespace = 0x17
	NamespaceMyPV    base.Namespace = 0x18
	NamespaceGPIO    base.Namespace = 0x19
	NamespaceFarm    base.Namespace = 0x1a
	NamespaceSE      base.Namespace = 0x1b
	NamespaceQPI     base.Namespace = 0x1c
	NamespaceGApp    base.Namespace = 0x1d
	NamespaceEMSPR   base.Namespace = 0x1e
	NamespaceWBD     base.Namespace = 0x20
	NamespaceREFU    base.Namespace = 0x21
	NamespaceOVP     base.Namespace = 0x22
	NamespaceServer  base.Namespace = 0xf8
	NamespaceGroup   base.Namespace = 0xfc
	NamespaceUnknown base.Namespace = 0xff
)

var namespacenames = map[base.Namespace]string{
	NamespaceRSCP:    "RSCP",
	NamespaceEMS:     "EMS",
	NamespacePVI:     "PVI",
	NamespaceBAT:     "BAT",
	NamespaceDCDC:    "DCDC",
	NamespacePM:      "PM",
	NamespaceDB:      "DB",
	NamespaceSRV:     "SRV",
	NamespaceHA:      "HA",
	NamespaceInfo:    "INFO",
	NamespaceEP:      "EP",
	NamespaceSYS:     "SYS",
	NamespaceUM:      "UM",
	NamespaceWB:      "WB",
	NamespacePTDB:    "PTDB",
	NamespaceLED:     "LED",
	NamespaceDiag:    "DIAG",
	NamespaceSGR:     "SGR",
	NamespaceMBS:     "MBS",
	NamespaceEH:      "EH",
	NamespaceUPnPC:   "UPNPC",
	NamespaceKNX:     "KNX",
	NamespaceEMSHB:   "EMSHB",
	NamespaceMyPV:    "MYPV",
	NamespaceGPIO:    "GPIO",
	NamespaceFarm:    "FARM",
	NamespaceSE:      "SE",
	NamespaceQPI:     "QPI",
	NamespaceGApp:    "GAPP",
	NamespaceEMSPR:   "EMSPR",
	NamespaceWBD:     "WBD",
	NamespaceREFU:    "REFU",
	NamespaceOVP:     "OVP",
	NamespaceServer:  "SERVER",
	NamespaceGroup:   "GROUP",
	NamespaceUnknown: "UNKNOWN",
}

// NamespaceName returns the short subsystem name, or its hex form when the
// subsystem is not known.
func NamespaceName(n base.Namespace) string {
	if s, ok := namespacenames[n]; ok {
		return s
	}
	return fmt.Sprintf("0x%02X", byte(n))
}

// Session management on the connection itself.
const (
	RscpAuthentication          base.Tag = 0x00000001
	RscpAuthenticationUser      base.Tag = 0x00000002
	RscpAuthenticationPassword  base.Tag = 0x00000003
	RscpUserLevel               base.Tag = 0x00000004
	RscpSetEncryptionPassphrase base.Tag = 0x00000005
	RscpAuthChallenge           base.Tag = 0x00000006
	RscpAuthChallengeIndex      base.Tag = 0x00000007
	RscpAuthChallengeData       base.Tag = 0x00000008
	RscpSetProtocolVersion      base.Tag = 0x00000009
	RscpSupportedProtocolVers   base.Tag = 0x0000000a
	RscpGeneralError            base.Tag = 0x007fffff
)

// Energy management system, the live power flow figures.
const (
	EmsPowerPV                       base.Tag = 0x01000001
	EmsPowerBat                      base.Tag = 0x01000002
	EmsPowerHome                     base.Tag = 0x01000003
	EmsPowerGrid                     base.Tag = 0x01000004
	EmsPowerAdd                      base.Tag = 0x01000005
	EmsAutarky                       base.Tag = 0x01000006
	EmsSelfConsumption               base.Tag = 0x01000007
	EmsBatSOC                        base.Tag = 0x01000008
	EmsCouplingMode                  base.Tag = 0x01000009
	EmsMode                          base.Tag = 0x01000011
	EmsPowerWbAll                    base.Tag = 0x0100001f
	EmsPowerWbSolar                  base.Tag = 0x01000020
	EmsStatus                        base.Tag = 0x01000040
	EmsUsedChargeLimit               base.Tag = 0x01000041
	EmsBatChargeLimit                base.Tag = 0x01000042
	EmsUserChargeLimit               base.Tag = 0x01000044
	EmsRemainingBatChargePower       base.Tag = 0x01000071
	EmsRemainingBatDischargePower    base.Tag = 0x01000072
	EmsEmergencyPowerStatus          base.Tag = 0x01000073
	EmsGetSysSpecs                   base.Tag = 0x01000098
	EmsMaxChargePower                base.Tag = 0x01000101
	EmsMaxDischargePower             base.Tag = 0x01000102
	EmsPowersaveEnabled              base.Tag = 0x01000104
	EmsWeatherRegulatedChargeEnabled base.Tag = 0x01000105
	EmsAlive                         base.Tag = 0x01050000
	EmsGeneralError                  base.Tag = 0x017fffff
)

// Photovoltaic inverter.
const (
	PviOnGrid       base.Tag = 0x02000001
	PviState        base.Tag = 0x02000002
	PviLastError    base.Tag = 0x02000003
	PviType         base.Tag = 0x02000009
	PviGeneralError base.Tag = 0x027fffff
)

// Battery pack.
const (
	BatRSOC                    base.Tag = 0x03000001
	BatModuleVoltage           base.Tag = 0x03000002
	BatCurrent                 base.Tag = 0x03000003
	BatMaxBatVoltage           base.Tag = 0x03000004
	BatMaxChargeCurrent        base.Tag = 0x03000005
	BatEodVoltage              base.Tag = 0x03000006
	BatMaxDischargeCurrent     base.Tag = 0x03000007
	BatChargeCycles            base.Tag = 0x03000008
	BatTerminalVoltage         base.Tag = 0x03000009
	BatStatusCode              base.Tag = 0x0300000a
	BatErrorCode               base.Tag = 0x0300000b
	BatDeviceName              base.Tag = 0x0300000c
	BatDCBCount                base.Tag = 0x0300000d
	BatRSOCReal                base.Tag = 0x0300000e
	BatASOC                    base.Tag = 0x0300000f
	BatFCC                     base.Tag = 0x03000010
	BatRC                      base.Tag = 0x03000011
	BatFirmwareVersion         base.Tag = 0x0300001f
	BatInfo                    base.Tag = 0x03000020
	BatManufacturerName        base.Tag = 0x03000025
	BatUsableCapacity          base.Tag = 0x03000026
	BatUsableRemainingCapacity base.Tag = 0x03000027
	BatDCBInfo                 base.Tag = 0x03000042
	BatSpecification           base.Tag = 0x03000043
	BatDesignCapacity          base.Tag = 0x03000045
	BatDesignVoltage           base.Tag = 0x03000046
	BatManufactureDate         base.Tag = 0x03000049
	BatSerialNo                base.Tag = 0x03000050
	BatGeneralError            base.Tag = 0x037fffff
)

// Power meter.
const (
	PmPowerL1         base.Tag = 0x05000001
	PmPowerL2         base.Tag = 0x05000002
	PmPowerL3         base.Tag = 0x05000003
	PmActivePhases    base.Tag = 0x05000004
	PmMode            base.Tag = 0x05000005
	PmEnergyL1        base.Tag = 0x05000006
	PmEnergyL2        base.Tag = 0x05000007
	PmEnergyL3        base.Tag = 0x05000008
	PmDeviceID        base.Tag = 0x05000009
	PmErrorCode       base.Tag = 0x0500000a
	PmFirmwareVersion base.Tag = 0x0500000c
	PmVoltageL1       base.Tag = 0x05000011
	PmVoltageL2       base.Tag = 0x05000012
	PmVoltageL3       base.Tag = 0x05000013
	PmType            base.Tag = 0x05000014
	PmCommState       base.Tag = 0x05000050
	PmDeviceName      base.Tag = 0x050000b1
	PmGeneralError    base.Tag = 0x057fffff
)

// Database, the historical records kept on the controller.
const (
	DbGraphIndex   base.Tag = 0x06000001
	DbBatPowerIn   base.Tag = 0x06000002
	DbBatPowerOut  base.Tag = 0x06000003
	DbDCPower      base.Tag = 0x06000004
	DbGridPowerIn  base.Tag = 0x06000005
	DbGridPowerOut base.Tag = 0x06000006
	DbGeneralError base.Tag = 0x067fffff
)

// Device information.
const (
	InfoSerialNumber      base.Tag = 0x0a000001
	InfoProductionDate    base.Tag = 0x0a000002
	InfoModulesSwVersions base.Tag = 0x0a000003
	InfoModuleSwVersion   base.Tag = 0x0a000004
	InfoModule            base.Tag = 0x0a000005
	InfoVersion           base.Tag = 0x0a000006
	InfoA35SerialNumber   base.Tag = 0x0a000007
	InfoIPAddress         base.Tag = 0x0a000008
	InfoSubnetMask        base.Tag = 0x0a000009
	InfoMACAddress        base.Tag = 0x0a00000a
	InfoGateway           base.Tag = 0x0a00000b
	InfoDNS               base.Tag = 0x0a00000c
	InfoDHCPStatus        base.Tag = 0x0a00000d
	InfoTime              base.Tag = 0x0a00000e
	InfoUTCTime           base.Tag = 0x0a00000f
	InfoTimeZone          base.Tag = 0x0a000010
	InfoInfo              base.Tag = 0x0a000011
	InfoSwRelease         base.Tag = 0x0a000019
	InfoPlatformType      base.Tag = 0x0a00001c
	InfoName              base.Tag = 0x0a000025
	InfoGeneralError      base.Tag = 0x0a7fffff
)

// Emergency power switchover.
const (
	EpSwitchToGrid     base.Tag = 0x0b000001
	EpSwitchToIsland   base.Tag = 0x0b000002
	EpIsReadyForSwitch base.Tag = 0x0b000003
	EpIsGridConnected  base.Tag = 0x0b000004
	EpIsIslandGrid     base.Tag = 0x0b000005
	EpIsInvalidState   base.Tag = 0x0b000006
	EpIsPossible       base.Tag = 0x0b000007
	EpGeneralError     base.Tag = 0x0b7fffff
)

// System maintenance.
const (
	SysSystemReboot        base.Tag = 0x0c000001
	SysIsSystemRebooting   base.Tag = 0x0c000002
	SysRestartApplication  base.Tag = 0x0c000003
	SysScriptFileList      base.Tag = 0x0c000010
	SysScriptFile          base.Tag = 0x0c000011
	SysExecuteScript       base.Tag = 0x0c000015
	SysSystemShutdown      base.Tag = 0x0c000016
	SysIsSystemShutingDown base.Tag = 0x0c000017
	SysGeneralError        base.Tag = 0x0c7fffff
)

// Update manager.
const (
	UmUpdateStatus    base.Tag = 0x0d000001
	UmUpdateDCDC      base.Tag = 0x0d000002
	UmCheckForUpdates base.Tag = 0x0d000003
	UmGeneralError    base.Tag = 0x0d7fffff
)

// Wallbox.
const (
	WbEnergyAll      base.Tag = 0x0e000001
	WbEnergySolar    base.Tag = 0x0e000002
	WbSOC            base.Tag = 0x0e000003
	WbStatus         base.Tag = 0x0e000004
	WbErrorCode      base.Tag = 0x0e000005
	WbMode           base.Tag = 0x0e000006
	WbAppSoftware    base.Tag = 0x0e000007
	WbDeviceID       base.Tag = 0x0e00000b
	WbPmPowerL1      base.Tag = 0x0e00000c
	WbPmPowerL2      base.Tag = 0x0e00000d
	WbPmPowerL3      base.Tag = 0x0e00000e
	WbPmActivePhases base.Tag = 0x0e00000f
	WbGeneralError   base.Tag = 0x0e7fffff
)

// Entry describes one catalogued tag. Kind is the payload type the answer
// usually carries, none when it varies or is not recorded.
type Entry struct {
	Name string
	Kind base.DataType
}

// Info looks a tag up in the catalogue, the response bit does not matter.
func Info(t base.Tag) (Entry, bool) {
	e, ok := catalogue[t.Request()]
	return e, ok
}

// Name returns the catalogued name of a tag, or its hex form for tags the
// catalogue does not know.
func Name(t base.Tag) string {
	if e, ok := Info(t); ok {
		return e.Name
	}
	return t.String()
}

// Lookup resolves a catalogued name back to its tag.
func Lookup(name string) (base.Tag, bool) {
	t, ok := names[name]
	return t, ok
}

var names = func() map[string]base.Tag {
	m := make(map[string]base.Tag, len(catalogue))
	for t, e := range catalogue {
		m[e.Name] = t
	}
	return m
}()

var catalogue = map[base.Tag]Entry{
	RscpAuthentication:          {Name: "RSCP_AUTHENTICATION", Kind: base.DataTypeUChar8},
	RscpAuthenticationUser:      {Name: "RSCP_AUTHENTICATION_USER", Kind: base.DataTypeCString},
	RscpAuthenticationPassword:  {Name: "RSCP_AUTHENTICATION_PASSWORD", Kind: base.DataTypeCString},
	RscpUserLevel:               {Name: "RSCP_USER_LEVEL", Kind: base.DataTypeUChar8},
	RscpSetEncryptionPassphrase: {Name: "RSCP_SET_ENCRYPTION_PASSPHRASE", Kind: base.DataTypeCString},
	RscpAuthChallenge:           {Name: "RSCP_AUTH_CHALLENGE", Kind: base.DataTypeNone},
	RscpAuthChallengeIndex:      {Name: "RSCP_AUTH_CHALLENGE_INDEX", Kind: base.DataTypeNone},
	RscpAuthChallengeData:       {Name: "RSCP_AUTH_CHALLENGE_DATA", Kind: base.DataTypeNone},
	RscpSetProtocolVersion:      {Name: "RSCP_SET_PROTOCOL_VERSION", Kind: base.DataTypeUChar8},
	RscpSupportedProtocolVers:   {Name: "RSCP_SUPPORTED_PROTOCOL_VERSIONS", Kind: base.DataTypeContainer},
	RscpGeneralError:            {Name: "RSCP_GENERAL_ERROR", Kind: base.DataTypeError},

	EmsPowerPV:                       {Name: "EMS_POWER_PV", Kind: base.DataTypeInt32},
	EmsPowerBat:                      {Name: "EMS_POWER_BAT", Kind: base.DataTypeInt32},
	EmsPowerHome:                     {Name: "EMS_POWER_HOME", Kind: base.DataTypeInt32},
	EmsPowerGrid:                     {Name: "EMS_POWER_GRID", Kind: base.DataTypeInt32},
	EmsPowerAdd:                      {Name: "EMS_POWER_ADD", Kind: base.DataTypeInt32},
	EmsAutarky:                       {Name: "EMS_AUTARKY", Kind: base.DataTypeFloat32},
	EmsSelfConsumption:               {Name: "EMS_SELF_CONSUMPTION", Kind: base.DataTypeFloat32},
	EmsBatSOC:                        {Name: "EMS_BAT_SOC", Kind: base.DataTypeUChar8},
	EmsCouplingMode:                  {Name: "EMS_COUPLING_MODE", Kind: base.DataTypeUChar8},
	EmsMode:                          {Name: "EMS_MODE", Kind: base.DataTypeUChar8},
	EmsPowerWbAll:                    {Name: "EMS_POWER_WB_ALL", Kind: base.DataTypeInt32},
	EmsPowerWbSolar:                  {Name: "EMS_POWER_WB_SOLAR", Kind: base.DataTypeInt32},
	EmsStatus:                        {Name: "EMS_STATUS", Kind: base.DataTypeUChar8},
	EmsUsedChargeLimit:               {Name: "EMS_USED_CHARGE_LIMIT", Kind: base.DataTypeInt32},
	EmsBatChargeLimit:                {Name: "EMS_BAT_CHARGE_LIMIT", Kind: base.DataTypeInt32},
	EmsUserChargeLimit:               {Name: "EMS_USER_CHARGE_LIMIT", Kind: base.DataTypeInt32},
	EmsRemainingBatChargePower:       {Name: "EMS_REMAINING_BAT_CHARGE_POWER", Kind: base.DataTypeInt32},
	EmsRemainingBatDischargePower:    {Name: "EMS_REMAINING_BAT_DISCHARGE_POWER", Kind: base.DataTypeInt32},
	EmsEmergencyPowerStatus:          {Name: "EMS_EMERGENCY_POWER_STATUS", Kind: base.DataTypeUChar8},
	EmsGetSysSpecs:                   {Name: "EMS_GET_SYS_SPECS", Kind: base.DataTypeContainer},
	EmsMaxChargePower:                {Name: "EMS_MAX_CHARGE_POWER", Kind: base.DataTypeUInt32},
	EmsMaxDischargePower:             {Name: "EMS_MAX_DISCHARGE_POWER", Kind: base.DataTypeUInt32},
	EmsPowersaveEnabled:              {Name: "EMS_POWERSAVE_ENABLED", Kind: base.DataTypeUChar8},
	EmsWeatherRegulatedChargeEnabled: {Name: "EMS_WEATHER_REGULATED_CHARGE_ENABLED", Kind: base.DataTypeUChar8},
	EmsAlive:                         {Name: "EMS_ALIVE", Kind: base.DataTypeNone},
	EmsGeneralError:                  {Name: "EMS_GENERAL_ERROR", Kind: base.DataTypeError},

	PviOnGrid:       {Name: "PVI_ON_GRID", Kind: base.DataTypeBool},
	PviState:        {Name: "PVI_STATE", Kind: base.DataTypeUChar8},
	PviLastError:    {Name: "PVI_LAST_ERROR", Kind: base.DataTypeNone},
	PviType:         {Name: "PVI_TYPE", Kind: base.DataTypeUChar8},
	PviGeneralError: {Name: "PVI_GENERAL_ERROR", Kind: base.DataTypeError},

	BatRSOC:                    {Name: "BAT_RSOC", Kind: base.DataTypeFloat32},
	BatModuleVoltage:           {Name: "BAT_MODULE_VOLTAGE", Kind: base.DataTypeFloat32},
	BatCurrent:                 {Name: "BAT_CURRENT", Kind: base.DataTypeFloat32},
	BatMaxBatVoltage:           {Name: "BAT_MAX_BAT_VOLTAGE", Kind: base.DataTypeFloat32},
	BatMaxChargeCurrent:        {Name: "BAT_MAX_CHARGE_CURRENT", Kind: base.DataTypeFloat32},
	BatEodVoltage:              {Name: "BAT_EOD_VOLTAGE", Kind: base.DataTypeFloat32},
	BatMaxDischargeCurrent:     {Name: "BAT_MAX_DISCHARGE_CURRENT", Kind: base.DataTypeFloat32},
	BatChargeCycles:            {Name: "BAT_CHARGE_CYCLES", Kind: base.DataTypeUInt32},
	BatTerminalVoltage:         {Name: "BAT_TERMINAL_VOLTAGE", Kind: base.DataTypeFloat32},
	BatStatusCode:              {Name: "BAT_STATUS_CODE", Kind: base.DataTypeUInt32},
	BatErrorCode:               {Name: "BAT_ERROR_CODE", Kind: base.DataTypeUInt32},
	BatDeviceName:              {Name: "BAT_DEVICE_NAME", Kind: base.DataTypeCString},
	BatDCBCount:                {Name: "BAT_DCB_COUNT", Kind: base.DataTypeUChar8},
	BatRSOCReal:                {Name: "BAT_RSOC_REAL", Kind: base.DataTypeFloat32},
	BatASOC:                    {Name: "BAT_ASOC", Kind: base.DataTypeFloat32},
	BatFCC:                     {Name: "BAT_FCC", Kind: base.DataTypeFloat32},
	BatRC:                      {Name: "BAT_RC", Kind: base.DataTypeFloat32},
	BatFirmwareVersion:         {Name: "BAT_FIRMWARE_VERSION", Kind: base.DataTypeCString},
	BatInfo:                    {Name: "BAT_INFO", Kind: base.DataTypeContainer},
	BatManufacturerName:        {Name: "BAT_MANUFACTURER_NAME", Kind: base.DataTypeCString},
	BatUsableCapacity:          {Name: "BAT_USABLE_CAPACITY", Kind: base.DataTypeFloat32},
	BatUsableRemainingCapacity: {Name: "BAT_USABLE_REMAINING_CAPACITY", Kind: base.DataTypeFloat32},
	BatDCBInfo:                 {Name: "BAT_DCB_INFO", Kind: base.DataTypeContainer},
	BatSpecification:           {Name: "BAT_SPECIFICATION", Kind: base.DataTypeContainer},
	BatDesignCapacity:          {Name: "BAT_DESIGN_CAPACITY", Kind: base.DataTypeFloat32},
	BatDesignVoltage:           {Name: "BAT_DESIGN_VOLTAGE", Kind: base.DataTypeFloat32},
	BatManufactureDate:         {Name: "BAT_MANUFACTURE_DATE", Kind: base.DataTypeUInt32},
	BatSerialNo:                {Name: "BAT_SERIALNO", Kind: base.DataTypeCString},
	BatGeneralError:            {Name: "BAT_GENERAL_ERROR", Kind: base.DataTypeError},

	PmPowerL1:         {Name: "PM_POWER_L1", Kind: base.DataTypeDouble64},
	PmPowerL2:         {Name: "PM_POWER_L2", Kind: base.DataTypeDouble64},
	PmPowerL3:         {Name: "PM_POWER_L3", Kind: base.DataTypeDouble64},
	PmActivePhases:    {Name: "PM_ACTIVE_PHASES", Kind: base.DataTypeUChar8},
	PmMode:            {Name: "PM_MODE", Kind: base.DataTypeUChar8},
	PmEnergyL1:        {Name: "PM_ENERGY_L1", Kind: base.DataTypeDouble64},
	PmEnergyL2:        {Name: "PM_ENERGY_L2", Kind: base.DataTypeDouble64},
	PmEnergyL3:        {Name: "PM_ENERGY_L3", Kind: base.DataTypeDouble64},
	PmDeviceID:        {Name: "PM_DEVICE_ID", Kind: base.DataTypeUInt32},
	PmErrorCode:       {Name: "PM_ERROR_CODE", Kind: base.DataTypeUInt32},
	PmFirmwareVersion: {Name: "PM_FIRMWARE_VERSION", Kind: base.DataTypeCString},
	PmVoltageL1:       {Name: "PM_VOLTAGE_L1", Kind: base.DataTypeFloat32},
	PmVoltageL2:       {Name: "PM_VOLTAGE_L2", Kind: base.DataTypeFloat32},
	PmVoltageL3:       {Name: "PM_VOLTAGE_L3", Kind: base.DataTypeFloat32},
	PmType:            {Name: "PM_TYPE", Kind: base.DataTypeUChar8},
	PmCommState:       {Name: "PM_COMM_STATE", Kind: base.DataTypeUChar8},
	PmDeviceName:      {Name: "PM_DEVICE_NAME", Kind: base.DataTypeCString},
	PmGeneralError:    {Name: "PM_GENERAL_ERROR", Kind: base.DataTypeError},

	DbGraphIndex:   {Name: "DB_GRAPH_INDEX", Kind: base.DataTypeFloat32},
	DbBatPowerIn:   {Name: "DB_BAT_POWER_IN", Kind: base.DataTypeFloat32},
	DbBatPowerOut:  {Name: "DB_BAT_POWER_OUT", Kind: base.DataTypeFloat32},
	DbDCPower:      {Name: "DB_DC_POWER", Kind: base.DataTypeFloat32},
	DbGridPowerIn:  {Name: "DB_GRID_POWER_IN", Kind: base.DataTypeFloat32},
	DbGridPowerOut: {Name: "DB_GRID_POWER_OUT", Kind: base.DataTypeFloat32},
	DbGeneralError: {Name: "DB_GENERAL_ERROR", Kind: base.DataTypeError},

	InfoSerialNumber:      {Name: "INFO_SERIAL_NUMBER", Kind: base.DataTypeCString},
	InfoProductionDate:    {Name: "INFO_PRODUCTION_DATE", Kind: base.DataTypeCString},
	InfoModulesSwVersions: {Name: "INFO_MODULES_SW_VERSIONS", Kind: base.DataTypeContainer},
	InfoModuleSwVersion:   {Name: "INFO_MODULE_SW_VERSION", Kind: base.DataTypeContainer},
	InfoModule:            {Name: "INFO_MODULE", Kind: base.DataTypeCString},
	InfoVersion:           {Name: "INFO_VERSION", Kind: base.DataTypeCString},
	InfoA35SerialNumber:   {Name: "INFO_A35_SERIAL_NUMBER", Kind: base.DataTypeCString},
	InfoIPAddress:         {Name: "INFO_IP_ADDRESS", Kind: base.DataTypeCString},
	InfoSubnetMask:        {Name: "INFO_SUBNET_MASK", Kind: base.DataTypeCString},
	InfoMACAddress:        {Name: "INFO_MAC_ADDRESS", Kind: base.DataTypeCString},
	InfoGateway:           {Name: "INFO_GATEWAY", Kind: base.DataTypeCString},
	InfoDNS:               {Name: "INFO_DNS", Kind: base.DataTypeCString},
	InfoDHCPStatus:        {Name: "INFO_DHCP_STATUS", Kind: base.DataTypeBool},
	InfoTime:              {Name: "INFO_TIME", Kind: base.DataTypeTimestamp},
	InfoUTCTime:           {Name: "INFO_UTC_TIME", Kind: base.DataTypeTimestamp},
	InfoTimeZone:          {Name: "INFO_TIME_ZONE", Kind: base.DataTypeCString},
	InfoInfo:              {Name: "INFO_INFO", Kind: base.DataTypeContainer},
	InfoSwRelease:         {Name: "INFO_SW_RELEASE", Kind: base.DataTypeCString},
	InfoPlatformType:      {Name: "INFO_PLATFORM_TYPE", Kind: base.DataTypeCString},
	InfoName:              {Name: "INFO_NAME", Kind: base.DataTypeCString},
	InfoGeneralError:      {Name: "INFO_GENERAL_ERROR", Kind: base.DataTypeError},

	EpSwitchToGrid:     {Name: "EP_SWITCH_TO_GRID", Kind: base.DataTypeNone},
	EpSwitchToIsland:   {Name: "EP_SWITCH_TO_ISLAND", Kind: base.DataTypeNone},
	EpIsReadyForSwitch: {Name: "EP_IS_READY_FOR_SWITCH", Kind: base.DataTypeBool},
	EpIsGridConnected:  {Name: "EP_IS_GRID_CONNECTED", Kind: base.DataTypeBool},
	EpIsIslandGrid:     {Name: "EP_IS_ISLAND_GRID", Kind: base.DataTypeBool},
	EpIsInvalidState:   {Name: "EP_IS_INVALID_STATE", Kind: base.DataTypeBool},
	EpIsPossible:       {Name: "EP_IS_POSSIBLE", Kind: base.DataTypeBool},
	EpGeneralError:     {Name: "EP_GENERAL_ERROR", Kind: base.DataTypeError},

	SysSystemReboot:        {Name: "SYS_SYSTEM_REBOOT", Kind: base.DataTypeUChar8},
	SysIsSystemRebooting:   {Name: "SYS_IS_SYSTEM_REBOOTING", Kind: base.DataTypeBool},
	SysRestartApplication:  {Name: "SYS_RESTART_APPLICATION", Kind: base.DataTypeBool},
	SysScriptFileList:      {Name: "SYS_SCRIPT_FILE_LIST", Kind: base.DataTypeContainer},
	SysScriptFile:          {Name: "SYS_SCRIPT_FILE", Kind: base.DataTypeCString},
	SysExecuteScript:       {Name: "SYS_EXECUTE_SCRIPT", Kind: base.DataTypeNone},
	SysSystemShutdown:      {Name: "SYS_SYSTEM_SHUTDOWN", Kind: base.DataTypeUChar8},
	SysIsSystemShutingDown: {Name: "SYS_IS_SYSTEM_SHUTING_DOWN", Kind: base.DataTypeBool},
	SysGeneralError:        {Name: "SYS_GENERAL_ERROR", Kind: base.DataTypeError},

	UmUpdateStatus:    {Name: "UM_UPDATE_STATUS", Kind: base.DataTypeUInt32},
	UmUpdateDCDC:      {Name: "UM_UPDATE_DCDC", Kind: base.DataTypeNone},
	UmCheckForUpdates: {Name: "UM_CHECK_FOR_UPDATES", Kind: base.DataTypeNone},
	UmGeneralError:    {Name: "UM_GENERAL_ERROR", Kind: base.DataTypeError},

	WbEnergyAll:      {Name: "WB_ENERGY_ALL", Kind: base.DataTypeNone},
	WbEnergySolar:    {Name: "WB_ENERGY_SOLAR", Kind: base.DataTypeNone},
	WbSOC:            {Name: "WB_SOC", Kind: base.DataTypeNone},
	WbStatus:         {Name: "WB_STATUS", Kind: base.DataTypeUChar8},
	WbErrorCode:      {Name: "WB_ERROR_CODE", Kind: base.DataTypeUInt32},
	WbMode:           {Name: "WB_MODE", Kind: base.DataTypeUChar8},
	WbAppSoftware:    {Name: "WB_APP_SOFTWARE", Kind: base.DataTypeCString},
	WbDeviceID:       {Name: "WB_DEVICE_ID", Kind: base.DataTypeUInt32},
	WbPmPowerL1:      {Name: "WB_PM_POWER_L1", Kind: base.DataTypeDouble64},
	WbPmPowerL2:      {Name: "WB_PM_POWER_L2", Kind: base.DataTypeDouble64},
	WbPmPowerL3:      {Name: "WB_PM_POWER_L3", Kind: base.DataTypeDouble64},
	WbPmActivePhases: {Name: "WB_PM_ACTIVE_PHASES", Kind: base.DataTypeUChar8},
	WbGeneralError:   {Name: "WB_GENERAL_ERROR", Kind: base.DataTypeError},
}
