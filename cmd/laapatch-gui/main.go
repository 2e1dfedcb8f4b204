// Package main provides the LAAPatch GUI application.
package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ZacharyZcR/LAAPatch/internal/cli"
	"github.com/ZacharyZcR/LAAPatch/internal/pe"
)

func main() {
	myApp := app.New()
	myWindow := myApp.NewWindow("LAAPatch - Large Address Aware flag editor")
	myWindow.Resize(fyne.NewSize(640, 240))

	// File path
	filePathEntry := widget.NewEntry()
	filePathEntry.SetPlaceHolder("Select a 32-bit executable...")

	// Current status
	statusOutput := widget.NewLabel("")
	statusOutput.Wrapping = fyne.TextWrapWord

	statusLabel := widget.NewLabel("Ready")

	fileButton := widget.NewButton("Browse", func() {
		dialog.ShowFileOpen(func(file fyne.URIReadCloser, err error) {
			if err != nil || file == nil {
				return
			}
			defer func() { _ = file.Close() }()
			filePathEntry.SetText(file.URI().Path())
		}, myWindow)
	})

	checkButton := widget.NewButton("Check", func() {
		if filePathEntry.Text == "" {
			dialog.ShowError(fmt.Errorf("select an executable first"), myWindow)
			return
		}

		statusLabel.SetText("Checking...")
		go func() {
			status, err := readStatus(filePathEntry.Text)
			fyne.Do(func() {
				if err != nil {
					dialog.ShowError(err, myWindow)
					statusLabel.SetText("Check failed")
					return
				}
				statusOutput.SetText(cli.StatusLine(status))
				statusLabel.SetText("Done")
			})
		}()
	})

	patchButton := func(label string, enable bool) *widget.Button {
		return widget.NewButton(label, func() {
			if filePathEntry.Text == "" {
				dialog.ShowError(fmt.Errorf("select an executable first"), myWindow)
				return
			}

			statusLabel.SetText("Patching...")
			go func() {
				changed, status, err := setFlag(filePathEntry.Text, enable)
				fyne.Do(func() {
					if err != nil {
						dialog.ShowError(err, myWindow)
						statusLabel.SetText("Patch failed")
						return
					}
					statusOutput.SetText(cli.StatusLine(status))
					if !changed {
						dialog.ShowInformation("No changes", noChangeMessage(enable), myWindow)
						statusLabel.SetText("Unchanged")
						return
					}
					dialog.ShowInformation("Success", changeMessage(enable), myWindow)
					statusLabel.SetText("Patched")
				})
			}()
		})
	}

	// Layout
	fileBox := container.NewBorder(nil, nil, nil, fileButton, filePathEntry)

	mainContent := container.NewBorder(
		container.NewVBox(
			widget.NewLabel("Executable path:"),
			fileBox,
			widget.NewSeparator(),
			container.NewGridWithColumns(3,
				checkButton,
				patchButton("Enable LAA", true),
				patchButton("Disable LAA", false),
			),
		),
		container.NewVBox(
			widget.NewSeparator(),
			statusLabel,
		),
		nil,
		nil,
		statusOutput,
	)

	myWindow.SetContent(mainContent)
	myWindow.ShowAndRun()
}

func readStatus(filepath string) (pe.Status, error) {
	reader, err := pe.Open(filepath)
	if err != nil {
		return pe.Status{}, err
	}
	defer func() { _ = reader.Close() }()

	return reader.Status()
}

func setFlag(filepath string, enable bool) (bool, pe.Status, error) {
	patcher, err := pe.NewPatcher(filepath)
	if err != nil {
		return false, pe.Status{}, err
	}
	defer func() { _ = patcher.Close() }()

	changed, err := patcher.SetLargeAddressAware(enable)
	if err != nil {
		return false, pe.Status{}, err
	}

	status, err := patcher.Status()
	if err != nil {
		return false, pe.Status{}, err
	}
	return changed, status, nil
}

func changeMessage(enable bool) string {
	if enable {
		return "Large Address Awareness is now enabled for this executable"
	}
	return "Large Address Awareness is now disabled for this executable"
}

func noChangeMessage(enable bool) string {
	if enable {
		return "This executable is already Large Address Aware"
	}
	return "This executable is not Large Address Aware"
}
