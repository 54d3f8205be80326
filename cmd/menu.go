package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

const menuRule = "    ========================================"

var bannerArt = []string{
	"             :::!~!!!!!:.",
	"                  .xUHWH!! !!?M88WHX:.",
	"                .X*#M@$!!  !X!M$$$$$$WWx:.",
	"               :!!!!!!?H! :!$!$$$$$$$$$$8X:",
	"              !!~  ~:~!! :~!$!#$$$$$$$$$$8X:",
	"             :!~::!H!<   ~.U$X!?R$$$$$$$$MM!",
	"             ~!~!!!!~~ .:XW$$$U!!?$$$$$$RMM!",
	"               !:~~~ .:!M\"T#$$$$WX??#MRRMMM!",
	"               ~?WuxiW*`   `\"#$$$$8!!!!??!!!",
	"             :X- M$$$$   •   `\"T#$T~!8$WUXU~",
	"            :%`  ~#$$$m:        ~!~ ?$$$$$$",
	"          :!`.-   ~T$$$$8xx.  .xWW- ~\"\"##*\"",
	".....   -~~:<` !    ~?T#$$@@W@*?$$   •  /`",
	"W$@@M!!! .!~~ !!     .:XUW$W!~ `\"~:    :",
	"#\"~~`.:x%`!!  !H:   !WM$$$$Ti.: .!WUn+!`",
	":::~:!!`:X~ .: ?H.!u \"$$$B$$$!W:U!T$$M~",
	".~~   :X@!.-~   ?@WTWo(\"*$$$W$TH$! `",
	"Wi.~!X$?!-~    : ?$$$B$Wu(\"**$RM!",
	"$R@i.~~ !     :   ~$$$$$B$$en:``",
	"?MXT@Wx.~    :     ~\"##*$$$$M~",
}

const (
	menuOptionScan = "1"
	choicePrompt   = "Select an option: "
	urlPrompt      = "Enter URL: "
)

func printBanner(out io.Writer) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, colorBanner(strings.Join(bannerArt, "\n")))
	fmt.Fprintln(out)
	fmt.Fprintln(out, menuRule)
	fmt.Fprintln(out, "                Made by protocolhere :)")
	fmt.Fprintln(out, menuRule)
	fmt.Fprintln(out, "    1. url scanner")
	fmt.Fprintln(out, menuRule)
	fmt.Fprintln(out)
}

// runMenu is the interactive shell: banner, one menu choice, then a single scan.
func runMenu(cmd *cobra.Command, appCtx *AppContext) error {
	reader := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	printBanner(out)

	fmt.Fprint(out, choicePrompt)
	choice, err := readLine(reader)
	if err != nil {
		return fmt.Errorf("failed to read menu choice: %w", err)
	}

	if choice != menuOptionScan {
		invalid := &InvalidChoiceError{Choice: choice}
		appCtx.Logger.Debugw("menu choice rejected", "choice", choice)
		fmt.Fprintln(out, colorError(invalid.Error()))
		return nil
	}

	fmt.Fprint(out, urlPrompt)
	target, err := readLine(reader)
	if err != nil {
		return fmt.Errorf("failed to read URL: %w", err)
	}

	// A failed fetch is already rendered by the reporter; the shell still exits cleanly.
	var failed *ScanFailedError
	if err := scanTargets(cmd.Context(), appCtx, []string{strings.TrimSpace(target)}, out, cmd.ErrOrStderr()); err != nil && !errors.As(err, &failed) {
		return err
	}
	return nil
}

// readLine returns one line without its line ending. A final line without a
// newline is accepted; an empty stream is io.EOF.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
