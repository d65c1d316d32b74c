package payroll

// =============================================================================
// POLICY - Fully resolved, plain-boolean pay policy for one employee
// =============================================================================

// Defaults used when neither the override nor the store sets a field.
var DefaultPolicy = Policy{
	IsFivePlus:      false,
	PayWeekly:       true,
	PayNight:        true,
	PayOvertime:     true,
	PayHoliday:      true,
	AutoDeductBreak: false,
	NoTaxDeduction:  false,
}

// Policy is the resolved policy the engine computes with.
type Policy struct {
	IsFivePlus      bool
	PayWeekly       bool
	PayNight        bool
	PayOvertime     bool
	PayHoliday      bool
	AutoDeductBreak bool
	NoTaxDeduction  bool
}

// ResolvePolicy coalesces each field: override (if set) > store (if set) > default.
// A nil override or store is treated as a layer with nothing set.
func ResolvePolicy(store *StoreSettings, override *Override) Policy {
	var s, o PolicyFields
	if store != nil {
		s = store.PolicyFields
	}
	if override != nil {
		o = override.PolicyFields
	}

	pick := func(ov, st *bool, def bool) bool {
		if ov != nil {
			return *ov
		}
		if st != nil {
			return *st
		}
		return def
	}

	d := DefaultPolicy
	return Policy{
		IsFivePlus:      pick(o.IsFivePlus, s.IsFivePlus, d.IsFivePlus),
		PayWeekly:       pick(o.PayWeekly, s.PayWeekly, d.PayWeekly),
		PayNight:        pick(o.PayNight, s.PayNight, d.PayNight),
		PayOvertime:     pick(o.PayOvertime, s.PayOvertime, d.PayOvertime),
		PayHoliday:      pick(o.PayHoliday, s.PayHoliday, d.PayHoliday),
		AutoDeductBreak: pick(o.AutoDeductBreak, s.AutoDeductBreak, d.AutoDeductBreak),
		NoTaxDeduction:  pick(o.NoTaxDeduction, s.NoTaxDeduction, d.NoTaxDeduction),
	}
}

// Night, overtime and holiday premiums are only owed by 5+ establishments.
func (p Policy) NightEnabled() bool    { return p.IsFivePlus && p.PayNight }
func (p Policy) OvertimeEnabled() bool { return p.IsFivePlus && p.PayOvertime }
func (p Policy) HolidayEnabled() bool  { return p.IsFivePlus && p.PayHoliday }
func (p Policy) WeeklyEnabled() bool   { return p.PayWeekly }
