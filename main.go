package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Avishek8136/Quantum-Computing-A-study-on-Grover-s-algorithm/cracker"
	"github.com/Avishek8136/Quantum-Computing-A-study-on-Grover-s-algorithm/quantum"
)

func newLogger(level string) zerolog.Logger {
	lvl := zerolog.InfoLevel
	switch level {
	case "debug":
		lvl = zerolog.DebugLevel
	case "warn":
		lvl = zerolog.WarnLevel
	case "error":
		lvl = zerolog.ErrorLevel
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(output).Level(lvl).With().Timestamp().Logger()
}

func main() {
	cfg := LoadConfig()
	log := newLogger(cfg.LogLevel)
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("================================================================")
	fmt.Println("QUANTUM PASSWORD CRACKING WITH GROVER'S ALGORITHM")
	fmt.Println("Comparing: Classical vs Statevector Simulator vs IBM Quantum")
	fmt.Println("================================================================")
	fmt.Printf("Character set: a-z, A-Z, 0-9 (%d characters)\n", len(cracker.Charset))

	var passwordLength int
	for {
		fmt.Print("\nEnter the password length (2-3 recommended): ")
		input, _ := reader.ReadString('\n')
		length, err := strconv.Atoi(strings.TrimSpace(input))
		if err == nil && length > 0 && length <= 10 {
			passwordLength = length
			break
		}
		fmt.Println("Invalid input. Please enter a number between 1 and 10.")
	}

	enc := cracker.NewEncoding(passwordLength)
	var password string
	for {
		fmt.Printf("Enter a %d-character password to crack: ", passwordLength)
		input, _ := reader.ReadString('\n')
		input = strings.TrimSpace(input)
		_, err := enc.Encode(input)
		switch {
		case err == nil:
			password = input
		case errors.Is(err, cracker.ErrLengthMismatch):
			fmt.Printf("Password must be exactly %d characters.\n", passwordLength)
		case errors.Is(err, cracker.ErrInvalidCharacter):
			fmt.Println("Use only characters from: a-z, A-Z, 0-9.")
		}
		if password != "" {
			break
		}
	}

	maxCores := runtime.NumCPU()
	cores := 1
	for {
		fmt.Printf("Enter the number of cores for the classical search (1-%d, default 1): ", maxCores)
		input, _ := reader.ReadString('\n')
		input = strings.TrimSpace(input)
		if input == "" {
			break
		}
		n, err := strconv.Atoi(input)
		if err == nil && n > 0 && n <= maxCores {
			cores = n
			break
		}
		fmt.Printf("Invalid input. Please enter a number between 1 and %d.\n", maxCores)
	}

	backendName := ""
	if cfg.HasIBM() {
		defaultBackend := cfg.IBMBackend
		if defaultBackend == "" {
			defaultBackend = "ibm_brisbane"
		}
		fmt.Print("\nRun on IBM quantum hardware as well? (y/n): ")
		input, _ := reader.ReadString('\n')
		if strings.TrimSpace(strings.ToLower(input)) == "y" {
			fmt.Printf("Enter backend name (default: %s): ", defaultBackend)
			input, _ = reader.ReadString('\n')
			backendName = strings.TrimSpace(input)
			if backendName == "" {
				backendName = defaultBackend
			}
		}
	} else {
		fmt.Println("\nIBM Quantum not configured (IBM_QUANTUM_TOKEN / IBM_QUANTUM_INSTANCE).")
		fmt.Println("Running classical vs simulator comparison only.")
	}

	targetHash := cracker.SimpleHash(password)
	targetIndex, _ := enc.Encode(password)
	searchSpace := enc.SearchSpace()
	qubits := enc.QubitsNeeded()
	iterations := quantum.OptimalIterations(searchSpace)

	fmt.Println("\n================================================================")
	fmt.Println("PRE-ANALYSIS")
	fmt.Println("================================================================")
	fmt.Printf("Password: '%s' | Hash: %s\n", password, targetHash)
	fmt.Printf("Search space: %d | Qubits: %d | Grover iterations: %d | Shots: %d\n",
		searchSpace, qubits, iterations, cfg.Shots)
	if backendName != "" && (qubits > 20 || iterations > 10) {
		log.Warn().Int("qubits", qubits).Int("iterations", iterations).
			Msg("circuit may be too large for reliable results on current hardware")
	}
	if searchSpace > 1_000_000 {
		fmt.Printf("\nWarning: the search space has %d states. This might take a very long time.\n", searchSpace)
		fmt.Print("Continue anyway? (yes/no): ")
		input, _ := reader.ReadString('\n')
		if strings.TrimSpace(strings.ToLower(input)) != "yes" {
			return
		}
	}

	report := cracker.NewReport()

	// Classical brute force.
	log.Info().Int("cores", cores).Msg("running classical brute force")
	classical := measured(func() *cracker.MethodResult {
		return cracker.ClassicalSearchParallel(context.Background(), enc, targetHash, cores)
	})
	report.Add(classical)
	fmt.Printf("\nClassical: found '%s' in %.4fs after %d attempts\n",
		classical.Password, classical.Elapsed.Seconds(), classical.Attempts)

	// Local statevector simulation.
	log.Info().Msg("running statevector simulator")
	circuit, err := quantum.BuildGroverCircuit(targetIndex, qubits, iterations)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build Grover circuit")
	}
	log.Debug().Int("gates", circuit.Size()).Msg("circuit assembled")

	sim := quantum.NewSimulator(cfg.SimSeed)
	simResult := measured(func() *cracker.MethodResult {
		res, runErr := runQuantum(context.Background(), sim, circuit, cfg.Shots, targetIndex, enc, iterations)
		if runErr != nil {
			log.Fatal().Err(runErr).Msg("simulator execution failed")
		}
		return res
	})
	report.Add(simResult)
	fmt.Printf("Simulator: measured '%s' in %.4fs (accuracy %.1f%%)\n",
		simResult.Password, simResult.Elapsed.Seconds(), simResult.Accuracy*100)

	// IBM hardware, isolated so a stuck queue or transport failure only
	// loses this row.
	if backendName != "" {
		hw := quantum.NewIBMBackend(quantum.IBMConfig{
			Token:    cfg.IBMToken,
			Instance: cfg.IBMInstance,
			Backend:  backendName,
			Logger:   log,
		})
		log.Info().Str("backend", backendName).Dur("timeout", cfg.IBMJobWait).
			Msg("submitting to IBM quantum hardware (queue wait counts toward elapsed time)")

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		ctx, cancel := context.WithTimeout(ctx, cfg.IBMJobWait)
		hwResult, hwErr := runQuantum(ctx, hw, circuit, cfg.Shots, targetIndex, enc, iterations)
		cancel()
		stop()

		if hwErr != nil {
			log.Warn().Err(hwErr).Msg("hardware run failed, omitting its row")
		} else {
			report.Add(hwResult)
			fmt.Printf("IBM %s: measured '%s' in %.4fs (accuracy %.1f%%)\n",
				backendName, hwResult.Password, hwResult.Elapsed.Seconds(), hwResult.Accuracy*100)
		}
	}

	printReport(report)

	fileName := fmt.Sprintf("comparison_data_len%d.csv", passwordLength)
	if err := saveReportCSV(report, fileName); err != nil {
		log.Error().Err(err).Msg("failed to save CSV")
	} else {
		fmt.Printf("\nComparison data saved to %s\n", fileName)
		fmt.Print("Upload the results to AWS S3? (y/n): ")
		input, _ := reader.ReadString('\n')
		if strings.TrimSpace(strings.ToLower(input)) == "y" {
			uploadReport(log, cfg, fileName)
		}
	}
}

// runQuantum executes the circuit on any backend and times the whole round
// trip, queue wait included.
func runQuantum(ctx context.Context, exec quantum.Executor, circuit *quantum.Circuit, shots int, target uint64, enc *cracker.Encoding, iterations int) (*cracker.MethodResult, error) {
	start := time.Now()
	dist, err := exec.Run(ctx, circuit, shots)
	elapsed := time.Since(start)
	if err != nil {
		return nil, err
	}
	result := cracker.Interpret(dist, target, enc, iterations)
	result.Method = exec.Name()
	result.Elapsed = elapsed
	return result, nil
}

// measured wraps a method run with heap-allocation accounting.
func measured(run func() *cracker.MethodResult) *cracker.MethodResult {
	runtime.GC()
	var before runtime.MemStats
	runtime.ReadMemStats(&before)

	result := run()

	var after runtime.MemStats
	runtime.ReadMemStats(&after)
	result.MemAllocMB = float64(after.TotalAlloc-before.TotalAlloc) / (1024 * 1024)
	return result
}

func printReport(report *cracker.Report) {
	fmt.Println("\n================================================================================")
	fmt.Println("THREE-WAY COMPARISON")
	fmt.Println("================================================================================")
	header := report.Header()
	fmt.Printf("%-24s %-12s %-14s %-20s %-10s\n", header[0], header[1], header[2], header[3], header[4])
	fmt.Println(strings.Repeat("-", 80))
	for _, row := range report.Rows() {
		fmt.Printf("%-24s %-12s %-14s %-20s %-10s\n", row[0], row[1], row[2], row[3], row[4])
	}
	fmt.Println("================================================================================")
}

func saveReportCSV(report *cracker.Report, fileName string) error {
	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", fileName, err)
	}
	defer file.Close()
	return report.WriteCSV(file)
}

func uploadReport(log zerolog.Logger, cfg *Config, fileName string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	awsCfg, err := cfg.LoadAWSConfig(ctx)
	if err != nil {
		log.Error().Err(err).Msg("could not load AWS configuration")
		return
	}
	if err := uploadToS3(ctx, awsCfg, cfg.AWSBucket, fileName); err != nil {
		log.Error().Err(err).Msg("S3 upload failed")
		return
	}
	fmt.Printf("Successfully uploaded %s to S3 bucket %s\n", fileName, cfg.AWSBucket)
}
