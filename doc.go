/*
Package lesolver solves linear systems uploaded to object storage.

A storage notification names an uploaded text file. The service fetches it, decodes it as
UTF-8, parses an N×N matrix followed by a right-hand-side vector, solves the system by
Gaussian elimination, and writes the formatted result under the same key in a second bucket.
Every invocation ends in exactly one Outcome: success with the stored result, or failure
naming the stage that stopped it.

# Input format

	2 0
	0 2
	4
	4

The first non-blank line fixes the dimension N. The next N-1 lines complete the matrix;
the remaining values form the vector, either as one row of N values or as one value per line.

# Usage

	svc, err := lesolver.New("uploads", "results", lesolver.WithStore(store))
	if err != nil {
		log.Fatal(err)
	}
	outcome := svc.Handle(ctx, domain.StorageEvent{Key: "system.txt"})
	fmt.Println(outcome.Message)

Without WithStore the service keeps its buckets on the local filesystem under .lesolver/buckets.
*/
package lesolver
