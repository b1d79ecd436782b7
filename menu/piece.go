package menu

// Checkbox is a toggleable checkbox
type Checkbox struct {
	checked bool
}

func NewCheckbox(checked bool) Checkbox {
	return Checkbox{checked: checked}
}

func (c Checkbox) Toggle() Checkbox {
	c.checked = !c.checked
	return c
}

func (c Checkbox) Set(checked bool) Checkbox {
	c.checked = checked
	return c
}

func (c Checkbox) Checked() bool {
	return c.checked
}

func (c Checkbox) Render() string {
	if c.checked {
		return "[x]"
	}
	return "[ ]"
}

// Button is a pressable button
type Button struct {
	label string
	key   string // Key that presses the button from anywhere in the menu
}

func NewButton(label, key string) Button {
	return Button{
		label: label,
		key:   key,
	}
}

func (b Button) Key() string {
	return b.key
}

func (b Button) Render() string {
	return "[ " + b.label + " ]"
}
