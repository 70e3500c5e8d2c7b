package tui

// huh forms for adding a device and writing a value. The form embeds in the
// model: while a form is active it owns all input.

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/freedomikeppp/mitsubishi-fx5/internal/config"
	"github.com/freedomikeppp/mitsubishi-fx5/internal/slmp"
)

type formKind int

const (
	formAdd formKind = iota
	formWrite
)

type formValues struct {
	address string
	value   string
	ascii   bool
}

func validateAddress(s string) error {
	_, err := slmp.ParseDevice(strings.TrimSpace(s))
	return err
}

func (m *Model) openAddForm() (tea.Model, tea.Cmd) {
	v := &formValues{}
	m.formValues = v
	m.formKind = formAdd
	m.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Device address").
			Description("M or D followed by a device number, e.g. D500").
			Value(&v.address).
			Validate(validateAddress),
		huh.NewConfirm().
			Title("Decode as ASCII").
			Value(&v.ascii),
	))
	return m, m.form.Init()
}

func (m *Model) openWriteForm(dev config.DeviceConfig) (tea.Model, tea.Cmd) {
	v := &formValues{address: dev.Address, ascii: dev.ASCII}
	m.formValues = v
	m.formKind = formWrite
	m.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Write " + dev.Address).
			Description(writeHint(dev)).
			Value(&v.value).
			Validate(func(s string) error { return validateWriteValue(dev, s) }),
	))
	return m, m.form.Init()
}

func writeHint(dev config.DeviceConfig) string {
	d, err := slmp.ParseDevice(dev.Address)
	if err == nil && d.Kind == slmp.BitDevice {
		return "0 or 1"
	}
	if dev.ASCII {
		return "up to 2 ASCII characters"
	}
	return "a 16-bit integer"
}

func validateWriteValue(dev config.DeviceConfig, s string) error {
	d, err := slmp.ParseDevice(dev.Address)
	if err != nil {
		return err
	}
	if d.Kind == slmp.WordDevice && dev.ASCII {
		_, _, err := slmp.StringToBytes(s)
		return err
	}
	_, err = strconv.Atoi(strings.TrimSpace(s))
	return err
}

func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	formModel, cmd := m.form.Update(msg)
	if f, ok := formModel.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		v := m.formValues
		kind := m.formKind
		m.form = nil
		m.formValues = nil

		switch kind {
		case formAdd:
			m.rows = append(m.rows, row{cfg: config.DeviceConfig{
				Address: strings.TrimSpace(v.address),
				ASCII:   v.ascii,
			}})
			m.status = "added " + strings.TrimSpace(v.address)
		case formWrite:
			if err := m.client.Write(v.address, v.value, v.ascii); err != nil {
				m.status = "write failed: " + err.Error()
			} else {
				m.status = "wrote " + v.address
			}
		}
		return m, nil

	case huh.StateAborted:
		m.form = nil
		m.formValues = nil
		return m, nil
	}

	return m, cmd
}
